package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/kubev2v/forkpool/internal/models"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
	"github.com/kubev2v/forkpool/pkg/scheduler"
)

const (
	MaxFibSize   = 40
	MaxSpraySize = 10_000_000
)

var errNotDone = errors.New("run not finished")

// Result is the outcome of a single workload run.
type Result struct {
	Workload models.Workload
	Size     int
	Value    int64
	Tasks    int64
	// Steals is the final value of the run's join counter.
	Steals   int64
	Duration time.Duration
	// Stats holds the scheduler counters accumulated during the run. Gauges
	// are taken at the end of the run.
	Stats scheduler.Stats
}

// Validate checks p against the workload's limits.
func Validate(p models.RunParams) error {
	switch p.Workload {
	case models.WorkloadFib:
		if p.Size < 0 || p.Size > MaxFibSize {
			return srvErrors.NewInvalidArgumentError("size", fmt.Sprintf("fib size must be within [0, %d]", MaxFibSize))
		}
	case models.WorkloadSpray:
		if p.Size < 1 || p.Size > MaxSpraySize {
			return srvErrors.NewInvalidArgumentError("size", fmt.Sprintf("spray size must be within [1, %d]", MaxSpraySize))
		}
	default:
		return srvErrors.NewInvalidArgumentError("workload", fmt.Sprintf("unknown workload %q", p.Workload))
	}
	if p.Timeout < 0 {
		return srvErrors.NewInvalidArgumentError("timeout", "must not be negative")
	}
	return nil
}

// Run submits the workload to s from outside the pool and waits for it to
// finish, for p.Timeout at most when set. Completion is polled with an
// exponential backoff so the caller never competes with the workers for long.
func Run(ctx context.Context, s *scheduler.Scheduler, p models.RunParams) (*Result, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	if s.Stats().Stopped {
		return nil, fmt.Errorf("scheduler %s is stopped", s.Name())
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	log := zap.S().Named("bench").With("workload", p.Workload, "size", p.Size)

	t := &tree{}
	before := s.Stats()
	start := time.Now()

	switch p.Workload {
	case models.WorkloadFib:
		t.pending.Store(1)
		s.Schedule(scheduler.NewTask(&fibNode{n: p.Size, tree: t}, &t.join))
	case models.WorkloadSpray:
		t.pending.Store(int64(p.Size))
		for range p.Size {
			s.Schedule(scheduler.NewTask(&leaf{tree: t}, &t.join))
		}
	}

	maxElapsed := backoff.DefaultMaxElapsedTime
	if p.Timeout > 0 {
		maxElapsed = p.Timeout
	}
	if err := wait(ctx, t, maxElapsed); err != nil {
		log.Warnw("run did not finish", "pending", t.pending.Load(), "error", err)
		return nil, err
	}
	elapsed := time.Since(start)

	res := &Result{
		Workload: p.Workload,
		Size:     p.Size,
		Value:    t.value.Load(),
		Tasks:    t.tasks.Load(),
		Steals:   t.join.Load(),
		Duration: elapsed,
		Stats:    delta(s.Stats(), before),
	}
	log.Debugw("run finished", "duration", elapsed, "tasks", res.Tasks, "steals", res.Steals)
	return res, nil
}

func wait(ctx context.Context, t *tree, maxElapsed time.Duration) error {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     50 * time.Microsecond,
		RandomizationFactor: 0.1,
		Multiplier:          2,
		MaxInterval:         20 * time.Millisecond,
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if !t.done() {
			return struct{}{}, errNotDone
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(maxElapsed))
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("waiting for run: %w", ctxErr)
	}
	return fmt.Errorf("waiting for run: %w", err)
}

// delta subtracts the counters of before from after.
func delta(after, before scheduler.Stats) scheduler.Stats {
	d := after
	d.Executed -= before.Executed
	d.Steals -= before.Steals
	d.FailedStealRounds -= before.FailedStealRounds
	d.Sleeps -= before.Sleeps
	d.ExternalScheduled -= before.ExternalScheduled
	d.Violations -= before.Violations
	return d
}

// ToRun converts a result into a history record.
func (r *Result) ToRun(id string) *models.Run {
	return &models.Run{
		ID:                id,
		Pool:              r.Stats.Name,
		Workload:          r.Workload,
		Size:              r.Size,
		Workers:           r.Stats.Workers,
		Value:             r.Value,
		Tasks:             r.Tasks,
		Steals:            r.Steals,
		Duration:          r.Duration,
		FailedStealRounds: r.Stats.FailedStealRounds,
		Sleeps:            r.Stats.Sleeps,
		Violations:        r.Stats.Violations,
	}
}
