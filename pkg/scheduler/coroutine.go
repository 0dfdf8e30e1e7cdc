package scheduler

import (
	"sync"
	"sync/atomic"

	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

// Coroutine is a Continuation whose body runs on its own goroutine and can
// suspend itself mid-way. Control is handed back and forth, so the body and
// the resuming worker never run at the same time.
//
// A body that suspends must arrange for the coroutine to be scheduled again
// (typically from outside the worker, e.g. on I/O completion) before calling
// Suspend, and must not leave it on the current worker's own slot.
type Coroutine struct {
	body func(*Suspension)

	resume    chan *Worker
	yield     chan struct{}
	abandoned chan struct{}

	started atomic.Bool
	done    atomic.Bool
	once    sync.Once
}

// Suspension is the body's handle on its coroutine.
type Suspension struct {
	c        *Coroutine
	w        *Worker
	detached bool
}

func NewCoroutine(body func(s *Suspension)) *Coroutine {
	return &Coroutine{
		body:      body,
		resume:    make(chan *Worker),
		yield:     make(chan struct{}),
		abandoned: make(chan struct{}),
	}
}

// Resume runs the body until it suspends or returns. Resuming a finished
// coroutine is a contract violation; resuming an abandoned one is a no-op.
func (c *Coroutine) Resume(w *Worker) {
	if c.isAbandoned() {
		return
	}
	if c.done.Load() {
		err := srvErrors.NewContractViolationError("resume once per suspension", "coroutine already finished")
		if w == nil {
			panic(err)
		}
		w.s.violate(err)
		return
	}

	if c.started.CompareAndSwap(false, true) {
		go c.start(w)
	} else {
		select {
		case c.resume <- w:
		case <-c.abandoned:
			return
		}
	}
	<-c.yield
}

// Done reports whether the body has returned.
func (c *Coroutine) Done() bool { return c.done.Load() }

// Abandon releases a suspended body: its pending Suspend returns false.
func (c *Coroutine) Abandon() {
	c.once.Do(func() { close(c.abandoned) })
}

func (c *Coroutine) isAbandoned() bool {
	select {
	case <-c.abandoned:
		return true
	default:
		return false
	}
}

func (c *Coroutine) start(w *Worker) {
	s := &Suspension{c: c, w: w}
	defer func() {
		c.done.Store(true)
		if !s.detached {
			c.yield <- struct{}{}
		}
	}()
	c.body(s)
}

// Worker is the worker that last resumed the coroutine. It changes across
// suspensions.
func (s *Suspension) Worker() *Worker { return s.w }

// Suspend hands control back to the resumer and blocks until the coroutine
// is resumed again. It returns false if the coroutine was abandoned instead;
// the body should then return without touching the scheduler.
func (s *Suspension) Suspend() bool {
	if s.detached {
		return false
	}
	s.c.yield <- struct{}{}

	select {
	case w := <-s.c.resume:
		s.w = w
		return true
	case <-s.c.abandoned:
		s.detached = true
		return false
	}
}
