package models

import (
	"fmt"
	"time"
)

type Workload string

const (
	// WorkloadFib forks a binary recursion tree from inside the pool.
	WorkloadFib Workload = "fib"
	// WorkloadSpray submits independent leaf tasks from outside the pool.
	WorkloadSpray Workload = "spray"
)

func ParseWorkload(s string) (Workload, error) {
	switch s {
	case "fib":
		return WorkloadFib, nil
	case "spray":
		return WorkloadSpray, nil
	default:
		return "", fmt.Errorf("invalid workload: %s", s)
	}
}

// RunParams describes a single benchmark run.
type RunParams struct {
	Workload Workload
	// Size is the Fib argument or the number of sprayed tasks.
	Size    int
	Timeout time.Duration
}

// Run is a finished benchmark run as stored in the history.
type Run struct {
	ID       string
	Pool     string
	Workload Workload
	Size     int
	Workers  int

	// Value is fib(Size) for fib runs and the leaf count for spray runs.
	Value    int64
	Tasks    int64
	Steals   int64
	Duration time.Duration

	FailedStealRounds int64
	Sleeps            int64
	Violations        int64

	CreatedAt time.Time
}

// TasksPerSecond is zero for runs that took no measurable time.
func (r Run) TasksPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Tasks) / r.Duration.Seconds()
}

// RunOutcome is what a started run eventually delivers.
type RunOutcome struct {
	Run *Run
	Err error
}

type BenchState string

const (
	BenchStateReady   BenchState = "ready"
	BenchStateRunning BenchState = "running"
)

// BenchStatus is the bench service state plus what it last did.
type BenchStatus struct {
	State     BenchState
	Current   *RunParams
	LastRunID string
	Error     error
}
