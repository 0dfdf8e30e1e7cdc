package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/forkpool/internal/bench"
	"github.com/kubev2v/forkpool/internal/models"
	"github.com/kubev2v/forkpool/internal/store"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
	"github.com/kubev2v/forkpool/pkg/scheduler"
)

type BenchService struct {
	scheduler *scheduler.Scheduler
	store     *store.Store
	record    bool

	mu     sync.Mutex
	status models.BenchStatus
}

// NewBenchService runs workloads on s. Finished runs are saved to st when
// record is set; st may be nil otherwise.
func NewBenchService(s *scheduler.Scheduler, st *store.Store, record bool) *BenchService {
	return &BenchService{
		scheduler: s,
		store:     st,
		record:    record && st != nil,
		status:    models.BenchStatus{State: models.BenchStateReady},
	}
}

// Start launches a run and returns at once. Only one run executes at a time;
// a second Start gets RunInProgressError. The returned future delivers exactly
// one outcome; stopping it cancels the run's wait.
func (b *BenchService) Start(ctx context.Context, params models.RunParams) (*models.Future[models.RunOutcome], error) {
	if err := bench.Validate(params); err != nil {
		return nil, err
	}

	b.mu.Lock()
	if b.status.State == models.BenchStateRunning {
		b.mu.Unlock()
		return nil, srvErrors.NewRunInProgressError()
	}
	p := params
	b.status = models.BenchStatus{State: models.BenchStateRunning, Current: &p, LastRunID: b.status.LastRunID}
	b.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	out := make(chan models.RunOutcome, 1)

	go func() {
		defer cancel()
		run, err := b.execute(runCtx, params)

		b.mu.Lock()
		b.status = models.BenchStatus{State: models.BenchStateReady, LastRunID: b.status.LastRunID, Error: err}
		if run != nil {
			b.status.LastRunID = run.ID
		}
		b.mu.Unlock()

		out <- models.RunOutcome{Run: run, Err: err}
		close(out)
	}()

	return models.NewFuture(out, cancel), nil
}

// Run is Start followed by waiting for the outcome. Cancelling ctx stops the
// wait for the run.
func (b *BenchService) Run(ctx context.Context, params models.RunParams) (*models.Run, error) {
	f, err := b.Start(ctx, params)
	if err != nil {
		return nil, err
	}

	select {
	case o := <-f.C():
		return o.Run, o.Err
	case <-ctx.Done():
		f.Stop()
		o := <-f.C()
		return o.Run, o.Err
	}
}

func (b *BenchService) execute(ctx context.Context, params models.RunParams) (*models.Run, error) {
	log := zap.S().Named("bench_service")

	res, err := bench.Run(ctx, b.scheduler, params)
	if err != nil {
		log.Errorw("run failed", "workload", params.Workload, "size", params.Size, "error", err)
		return nil, err
	}

	run := res.ToRun(uuid.NewString())
	if b.record {
		if err := b.store.Runs().Save(ctx, run); err != nil {
			log.Errorw("failed to record run", "id", run.ID, "error", err)
			return run, err
		}
	}

	log.Infow("run finished",
		"id", run.ID,
		"workload", run.Workload,
		"size", run.Size,
		"duration", run.Duration,
		"tasks", run.Tasks,
		"steals", run.Steals)
	return run, nil
}

func (b *BenchService) Status() models.BenchStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

type RunListParams struct {
	Workloads []models.Workload
	Limit     uint64
	Offset    uint64
}

type RunListResult struct {
	Runs  []models.Run
	Total int
}

func (b *BenchService) List(ctx context.Context, params RunListParams) (*RunListResult, error) {
	if b.store == nil {
		return &RunListResult{}, nil
	}

	runs, err := b.store.Runs().List(ctx, b.buildListOptions(params)...)
	if err != nil {
		return nil, err
	}

	// Get total count without pagination
	total, err := b.store.Runs().Count(ctx, b.buildListOptions(RunListParams{Workloads: params.Workloads})...)
	if err != nil {
		return nil, err
	}

	return &RunListResult{
		Runs:  runs,
		Total: total,
	}, nil
}

func (b *BenchService) Get(ctx context.Context, id string) (*models.Run, error) {
	if b.store == nil {
		return nil, srvErrors.NewRunNotFoundError(id)
	}
	return b.store.Runs().Get(ctx, id)
}

func (b *BenchService) buildListOptions(params RunListParams) []store.ListOption {
	var opts []store.ListOption

	if len(params.Workloads) > 0 {
		opts = append(opts, store.ByWorkload(params.Workloads...))
	}
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	return opts
}
