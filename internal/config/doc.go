// Package config defines the configuration structure for forkpool.
//
// Configuration is organized into logical sections (Pool, Bench, Server, Store)
// and uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Pool           - Scheduler sizing and seeding
//	├── Bench          - Workload parameters for the run command
//	├── Server         - HTTP server settings
//	├── Store          - Run history storage
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Pool Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ Workers          │ 0       │ Worker count, 0 means GOMAXPROCS       │
//	│ QueueCapacity    │ 256     │ Initial capacity of every slot         │
//	│ Seed             │ 0       │ Victim selection seed, 0 means random  │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Bench Configuration
//
//	┌──────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field    │ Default │ Description                                  │
//	├──────────┼─────────┼──────────────────────────────────────────────┤
//	│ Workload │ "fib"   │ "fib" (fork tree) or "spray" (external)      │
//	│ Depth    │ 25      │ Fib argument                                 │
//	│ Tasks    │ 10000   │ Number of tasks sprayed from outside         │
//	│ Runs     │ 1       │ Repetitions                                  │
//	│ Timeout  │ 1m      │ Upper bound for a single run                 │
//	│ Record   │ false   │ Persist results to the run store             │
//	└──────────┴─────────┴──────────────────────────────────────────────┘
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Store Configuration
//
// DataFolder holds forkpool.duckdb. When empty the history lives in memory
// and is lost on exit.
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Bench Server Store
//
// Generated helpers include:
//
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithPool(Pool), WithBench(Bench), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(*config.NewPoolWithOptionsAndDefaults(
//	        config.WithWorkers(8),
//	    )),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
