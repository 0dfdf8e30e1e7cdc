package handlers

import (
	"time"

	"github.com/kubev2v/forkpool/internal/metrics"
	"github.com/kubev2v/forkpool/internal/services"
)

type Handler struct {
	benchSrv       *services.BenchService
	pool           metrics.StatsProvider
	defaultTimeout time.Duration
}

// New builds the API handler. defaultTimeout bounds runs whose request does
// not carry a timeout.
func New(benchSrv *services.BenchService, pool metrics.StatsProvider, defaultTimeout time.Duration) *Handler {
	return &Handler{
		benchSrv:       benchSrv,
		pool:           pool,
		defaultTimeout: defaultTimeout,
	}
}
