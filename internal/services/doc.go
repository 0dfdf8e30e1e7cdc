// Package services implements the business logic layer for forkpool.
//
// Services sit between the HTTP handlers or CLI commands and the scheduler
// plus the store.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints) / CLI commands
//	    │
//	    ▼
//	Services Layer
//	    └── BenchService ──► Scheduler, Store, bench
//
// # BenchService
//
// BenchService runs benchmark workloads on a shared scheduler and keeps their
// history.
//
// State Machine:
//
//	┌───────┐  Start   ┌─────────┐
//	│ Ready │─────────►│ Running │
//	└───────┘          └────┬────┘
//	    ▲                   │
//	    └───────────────────┘
//	     finished, failed or stopped
//
// Key behaviors:
//   - Only one run executes at a time (RunInProgressError otherwise)
//   - Start returns a models.Future that delivers exactly one RunOutcome
//   - Future.Stop cancels the wait; tasks already submitted still drain
//   - Finished runs get a uuid and are saved when recording is enabled
//   - Status reports the current parameters, the last run id and the last error
//
// Usage:
//
//	svc := services.NewBenchService(sched, st, true)
//	run, err := svc.Run(ctx, models.RunParams{Workload: models.WorkloadFib, Size: 25})
//
//	res, err := svc.List(ctx, services.RunListParams{Limit: 20})
package services
