// Package server provides the HTTP server for forkpool.
//
// The server uses the Gin web framework and exposes the JSON API under
// /api/v1 plus Prometheus metrics under /metrics.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (ginzap, "http" logger)                         │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics       promhttp over the given Gatherer              │
//	│  /api/v1        handlers registered via callback              │
//	│  anything else  404 JSON error                                │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"): Gin runs in debug mode.
//
// Production Mode (ServerMode = "prod"): Gin runs in release mode.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, registry, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Start returns nil after a graceful Stop. Request contexts derive from the
// context given to Start.
package server
