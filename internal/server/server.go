package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/forkpool/api/v1"
	"github.com/kubev2v/forkpool/internal/config"
)

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

// NewServer builds the HTTP server. registerHandlerFn receives the /api/v1
// group; gatherer backs GET /metrics.
func NewServer(cfg *config.Configuration, gatherer prometheus.Gatherer, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	switch cfg.Server.ServerMode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "dev":
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.Server.ServerMode)
	}

	logger := zap.L().Named("http")

	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
	)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router := engine.Group("/api/v1")
	registerHandlerFn(router)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.Error{Error: "route not found"})
	})

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops. A clean Stop returns nil.
func (s *Server) Start(ctx context.Context) error {
	zap.S().Named("http").Infow("starting server", "addr", s.srv.Addr)

	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts down gracefully, waiting for in-flight requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("http").Info("stopping server")
	return s.srv.Shutdown(ctx)
}
