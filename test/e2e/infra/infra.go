package infra

// InfraManager abstracts the lifecycle of the forkpool server under test.
// Process-based: builds nothing, starts the given binary with `serve`.
// External: no-op, the server is managed outside the test run.
type InfraManager interface {
	StartForkpool(cfg ServeConfig) (string, error)
	StopForkpool() error
	RestartForkpool() error
}

// ServeConfig holds configuration for starting a forkpool server.
type ServeConfig struct {
	HTTPPort   int
	Workers    int
	DataFolder string
	LogLevel   string
}
