// Package handlers implements the HTTP API layer for forkpool.
//
// Handlers delegate to the services layer and focus on request validation,
// response formatting, and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Parameter parsing                                            │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion (api/v1)                             │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│              BenchService │ Scheduler stats                     │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬────────────┬──────────────────────────────────────────────┐
//	│ Method │ Endpoint   │ Description                                  │
//	├────────┼────────────┼──────────────────────────────────────────────┤
//	│ GET    │ /pool      │ Scheduler snapshot plus bench status         │
//	│ GET    │ /runs      │ Recorded runs (workload, page, pageSize)     │
//	│ POST   │ /runs      │ Execute a run, ?async=true returns at once   │
//	│ GET    │ /runs/{id} │ One recorded run                             │
//	└────────┴────────────┴──────────────────────────────────────────────┘
//
// # Error Mapping
//
//	┌───────────────────────────┬────────┐
//	│ Error                     │ Status │
//	├───────────────────────────┼────────┤
//	│ InvalidArgumentError      │ 400    │
//	│ ResourceNotFoundError     │ 404    │
//	│ RunInProgressError        │ 409    │
//	│ context.DeadlineExceeded  │ 504    │
//	│ anything else             │ 500    │
//	└───────────────────────────┴────────┘
//
// # Pagination
//
// pageSize defaults to 20 and is capped at 100. pageCount is at least 1.
package handlers
