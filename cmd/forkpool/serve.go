package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/forkpool/api/v1"
	"github.com/kubev2v/forkpool/internal/handlers"
	"github.com/kubev2v/forkpool/internal/metrics"
	"github.com/kubev2v/forkpool/internal/server"
	"github.com/kubev2v/forkpool/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduler behind the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			st, err := openStore(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			sched := newScheduler(a.cfg)
			defer sched.Close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			if err := metrics.Register(reg, metrics.NewCollector("forkpool", sched)); err != nil {
				return err
			}

			svc := services.NewBenchService(sched, st, true)
			h := handlers.New(svc, sched, a.cfg.Bench.Timeout)

			srv, err := server.NewServer(a.cfg, reg, func(router *gin.RouterGroup) {
				v1.RegisterHandlers(router, h)
			})
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start(ctx) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			zap.S().Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&a.cfg.Server.HTTPPort, "http-port", a.cfg.Server.HTTPPort, "HTTP listen port")
	flags.StringVar(&a.cfg.Server.ServerMode, "server-mode", a.cfg.Server.ServerMode, `server mode: "dev" or "prod"`)
	flags.DurationVar(&a.cfg.Bench.Timeout, "timeout", a.cfg.Bench.Timeout, "default upper bound for runs started over HTTP")

	return cmd
}
