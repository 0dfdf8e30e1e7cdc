package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

// New builds a zap logger. format is "console" or "json"; level is any
// zapcore level name.
func New(format, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, srvErrors.NewInvalidArgumentError("log-level", err.Error())
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, srvErrors.NewInvalidArgumentError("log-format", "must be console or json")
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Setup builds a logger and installs it as the zap global. The returned
// function flushes and restores the previous globals.
func Setup(format, level string) (func(), error) {
	l, err := New(format, level)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(l)
	return func() {
		_ = l.Sync()
		restore()
	}, nil
}
