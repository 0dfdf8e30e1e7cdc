package v1

import "time"

// PoolStatus is the body of GET /pool.
type PoolStatus struct {
	Name              string `json:"name"`
	Workers           int    `json:"workers"`
	Active            int64  `json:"active"`
	Thieves           int64  `json:"thieves"`
	Queued            []int  `json:"queued"`
	QueuedTotal       int    `json:"queuedTotal"`
	Executed          int64  `json:"executed"`
	Steals            int64  `json:"steals"`
	FailedStealRounds int64  `json:"failedStealRounds"`
	Sleeps            int64  `json:"sleeps"`
	ExternalScheduled int64  `json:"externalScheduled"`
	Violations        int64  `json:"violations"`
	Stopped           bool   `json:"stopped"`

	Bench BenchStatus `json:"bench"`
}

type BenchStatusState string

const (
	BenchStatusStateReady   BenchStatusState = "ready"
	BenchStatusStateRunning BenchStatusState = "running"
)

type BenchStatus struct {
	State     BenchStatusState `json:"state"`
	Current   *StartRunRequest `json:"current,omitempty"`
	LastRunID *string          `json:"lastRunId,omitempty"`
	Error     *string          `json:"error,omitempty"`
}

// StartRunRequest is the body of POST /runs.
type StartRunRequest struct {
	Workload string `json:"workload" binding:"required,oneof=fib spray"`
	Size     int    `json:"size"`
	// Timeout is a Go duration string, e.g. "30s".
	Timeout *string `json:"timeout,omitempty"`
}

type Run struct {
	ID                string    `json:"id"`
	Pool              string    `json:"pool"`
	Workload          string    `json:"workload"`
	Size              int       `json:"size"`
	Workers           int       `json:"workers"`
	Value             int64     `json:"value"`
	Tasks             int64     `json:"tasks"`
	Steals            int64     `json:"steals"`
	DurationMs        float64   `json:"durationMs"`
	TasksPerSecond    float64   `json:"tasksPerSecond"`
	FailedStealRounds int64     `json:"failedStealRounds"`
	Sleeps            int64     `json:"sleeps"`
	Violations        int64     `json:"violations"`
	CreatedAt         time.Time `json:"createdAt"`
}

type RunListResponse struct {
	Page      int   `json:"page"`
	PageCount int   `json:"pageCount"`
	Total     int   `json:"total"`
	Runs      []Run `json:"runs"`
}

// ListRunsParams are the query parameters of GET /runs.
type ListRunsParams struct {
	Workload []string `form:"workload"`
	Page     *int     `form:"page"`
	PageSize *int     `form:"pageSize"`
}

type Error struct {
	Error string `json:"error"`
}
