package config

import (
	"time"

	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Bench Server Store

type Configuration struct {
	Pool      Pool   `debugmap:"visible"`
	Bench     Bench  `debugmap:"visible"`
	Server    Server `debugmap:"visible"`
	Store     Store  `debugmap:"visible"`
	LogFormat string `debugmap:"visible" default:"console"`
	LogLevel  string `debugmap:"visible" default:"info"`
}

type Pool struct {
	// Workers <= 0 means one worker per GOMAXPROCS.
	Workers       int `debugmap:"visible" default:"0"`
	QueueCapacity int `debugmap:"visible" default:"256"`
	// Seed 0 picks a time-based seed.
	Seed uint64 `debugmap:"visible" default:"0"`
}

type Bench struct {
	Workload string        `debugmap:"visible" default:"fib"`
	Depth    int           `debugmap:"visible" default:"25"`
	Tasks    int           `debugmap:"visible" default:"10000"`
	Runs     int           `debugmap:"visible" default:"1"`
	Timeout  time.Duration `debugmap:"visible" default:"1m"`
	Record   bool          `debugmap:"visible" default:"false"`
}

type Server struct {
	ServerMode string `debugmap:"visible" default:"dev"`
	HTTPPort   int    `debugmap:"visible" default:"8000"`
}

type Store struct {
	// DataFolder empty keeps the run history in memory.
	DataFolder string `debugmap:"visible" default:""`
}

func (c *Configuration) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return srvErrors.NewInvalidArgumentError("log-format", "must be console or json")
	}
	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		return srvErrors.NewInvalidArgumentError("server-mode", "must be dev or prod")
	}
	if c.Pool.QueueCapacity <= 0 {
		return srvErrors.NewInvalidArgumentError("queue-capacity", "must be positive")
	}
	if c.Bench.Runs <= 0 {
		return srvErrors.NewInvalidArgumentError("runs", "must be positive")
	}
	if c.Bench.Timeout <= 0 {
		return srvErrors.NewInvalidArgumentError("timeout", "must be positive")
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return srvErrors.NewInvalidArgumentError("http-port", "must be between 1 and 65535")
	}
	return nil
}
