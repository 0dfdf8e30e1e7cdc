package v1

import (
	"time"

	"github.com/kubev2v/forkpool/internal/models"
	"github.com/kubev2v/forkpool/internal/util"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
	"github.com/kubev2v/forkpool/pkg/scheduler"
)

// NewRunFromModel converts a models.Run to an API Run.
func NewRunFromModel(r models.Run) Run {
	return Run{
		ID:                r.ID,
		Pool:              r.Pool,
		Workload:          string(r.Workload),
		Size:              r.Size,
		Workers:           r.Workers,
		Value:             r.Value,
		Tasks:             r.Tasks,
		Steals:            r.Steals,
		DurationMs:        util.Round(float64(r.Duration) / float64(time.Millisecond)),
		TasksPerSecond:    util.Round(r.TasksPerSecond()),
		FailedStealRounds: r.FailedStealRounds,
		Sleeps:            r.Sleeps,
		Violations:        r.Violations,
		CreatedAt:         r.CreatedAt,
	}
}

func NewPoolStatus(st scheduler.Stats, bench models.BenchStatus) PoolStatus {
	return PoolStatus{
		Name:              st.Name,
		Workers:           st.Workers,
		Active:            st.Active,
		Thieves:           st.Thieves,
		Queued:            st.Queued,
		QueuedTotal:       st.QueuedTotal(),
		Executed:          st.Executed,
		Steals:            st.Steals,
		FailedStealRounds: st.FailedStealRounds,
		Sleeps:            st.Sleeps,
		ExternalScheduled: st.ExternalScheduled,
		Violations:        st.Violations,
		Stopped:           st.Stopped,
		Bench:             NewBenchStatus(bench),
	}
}

func NewBenchStatus(status models.BenchStatus) BenchStatus {
	var b BenchStatus

	switch status.State {
	case models.BenchStateRunning:
		b.State = BenchStatusStateRunning
	default:
		b.State = BenchStatusStateReady
	}

	if status.Current != nil {
		b.Current = &StartRunRequest{Workload: string(status.Current.Workload), Size: status.Current.Size}
		if status.Current.Timeout > 0 {
			b.Current.Timeout = util.Ptr(status.Current.Timeout.String())
		}
	}
	if status.LastRunID != "" {
		b.LastRunID = util.Ptr(status.LastRunID)
	}
	if status.Error != nil {
		b.Error = util.Ptr(status.Error.Error())
	}

	return b
}

// ToRunParams validates the request and converts it to run parameters.
// defaultTimeout applies when the request has none.
func (r StartRunRequest) ToRunParams(defaultTimeout time.Duration) (models.RunParams, error) {
	workload, err := models.ParseWorkload(r.Workload)
	if err != nil {
		return models.RunParams{}, srvErrors.NewInvalidArgumentError("workload", err.Error())
	}

	timeout := defaultTimeout
	if r.Timeout != nil {
		timeout, err = time.ParseDuration(*r.Timeout)
		if err != nil {
			return models.RunParams{}, srvErrors.NewInvalidArgumentError("timeout", err.Error())
		}
	}

	return models.RunParams{Workload: workload, Size: r.Size, Timeout: timeout}, nil
}
