package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kubev2v/forkpool/internal/config"
	"github.com/kubev2v/forkpool/internal/store"
	"github.com/kubev2v/forkpool/internal/store/migrations"
	"github.com/kubev2v/forkpool/pkg/scheduler"
)

const dbFile = "forkpool.duckdb"

func newScheduler(cfg *config.Configuration) *scheduler.Scheduler {
	opts := []scheduler.Option{
		scheduler.WithQueueCapacity(cfg.Pool.QueueCapacity),
		scheduler.WithLogger(zap.L()),
	}
	if cfg.Pool.Seed != 0 {
		opts = append(opts, scheduler.WithSeed(cfg.Pool.Seed))
	}
	return scheduler.NewScheduler(cfg.Pool.Workers, opts...)
}

// openStore opens the run history and brings its schema up to date.
func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	path := ":memory:"
	if cfg.Store.DataFolder != "" {
		if err := os.MkdirAll(cfg.Store.DataFolder, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data folder: %w", err)
		}
		path = filepath.Join(cfg.Store.DataFolder, dbFile)
	}

	db, err := store.NewDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store.NewStore(db), nil
}
