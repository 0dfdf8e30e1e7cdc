/*
Package main provides end-to-end testing for the forkpool server.

# Package Structure

	test/e2e/
	├── main.go          Entry point: flags, config, InfraManager setup, Ginkgo runner
	├── tests.go         Ginkgo specs against a live `forkpool serve`
	├── doc.go           This file
	├── infra/           Infrastructure management
	│   ├── infra.go     InfraManager interface + ServeConfig
	│   ├── process.go   ProcessInfraManager (child process)
	│   └── external.go  ExternalInfraManager (no-op, externally managed)
	└── service/
	    └── service.go   ForkpoolSvc, a thin wrapper over pkg/client

# InfraManager

	type InfraManager interface {
	    StartForkpool(cfg) / StopForkpool() / RestartForkpool()
	}

Two implementations:
  - ProcessInfraManager: starts the binary with `serve` and waits for /metrics (default).
  - ExternalInfraManager: no-op; the server is already running at -api-url.

Selected via the -infra-mode flag ("process" or "external").

# Running

	go build -o bin/forkpool ./cmd/forkpool
	go run ./test/e2e -binary bin/forkpool
	go run ./test/e2e -infra-mode external -api-url http://localhost:8000
*/
package main
