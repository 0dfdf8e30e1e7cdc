package scheduler

import (
	"sync/atomic"

	"github.com/kubev2v/forkpool/pkg/eventcount"
)

// Continuation is a suspended computation. Resume transfers control to it
// until it completes or suspends again. It is resumed at most once per
// suspension.
type Continuation interface {
	Resume(w *Worker)
}

// ContinuationFunc adapts a plain function to a Continuation.
type ContinuationFunc func(w *Worker)

func (f ContinuationFunc) Resume(w *Worker) { f(w) }

// Task is a continuation plus the join counter of the fork it belongs to.
// The scheduler adds one to the join counter every time the task is stolen;
// the counter itself belongs to whoever created the task.
type Task struct {
	cont Continuation
	join *atomic.Int64
}

func NewTask(cont Continuation, join *atomic.Int64) *Task {
	return &Task{cont: cont, join: join}
}

func (t *Task) Join() *atomic.Int64 { return t.join }

func (t *Task) Resume(w *Worker) { t.cont.Resume(w) }

// WorkQueue is one slot's double-ended queue. Push and Pop are called by the
// slot owner only; Steal may be called by any goroutine at the same time.
type WorkQueue interface {
	Push(t *Task)
	Pop() (*Task, bool)
	Steal() (*Task, bool)
	Empty() bool
	Len() int
}

// Notifier is the blocking wait/wake primitive workers sleep on. A notify
// issued after PrepareWait must reach the prepared key.
type Notifier interface {
	PrepareWait() eventcount.Key
	CancelWait(k eventcount.Key)
	Wait(k eventcount.Key)
	NotifyOne()
	NotifyAll()
}

// Stats is a point-in-time snapshot of a scheduler.
type Stats struct {
	Name              string
	Workers           int
	Active            int64
	Thieves           int64
	Queued            []int
	Executed          int64
	Steals            int64
	FailedStealRounds int64
	Sleeps            int64
	ExternalScheduled int64
	Violations        int64
	Stopped           bool
}

// QueuedTotal sums the queue lengths of every slot, external included.
func (s Stats) QueuedTotal() int {
	total := 0
	for _, n := range s.Queued {
		total += n
	}
	return total
}
