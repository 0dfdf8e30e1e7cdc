package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
	"golang.org/x/time/rate"

	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
	"github.com/kubev2v/forkpool/pkg/eventcount"
	"github.com/kubev2v/forkpool/pkg/xoshiro"
)

type outcome int

const (
	outcomeFound outcome = iota
	outcomeRetry
	outcomeTerminate
)

type idleState int

const (
	stateEnter idleState = iota
	stateStealRound
	stateRecheckExternal
	stateCheckStop
	stateMaybeSleep
	stateSleeping
)

type workerStats struct {
	_            cpu.CacheLinePad
	executed     atomic.Int64
	steals       atomic.Int64
	failedRounds atomic.Int64
	sleeps       atomic.Int64
}

// Worker is the context a continuation runs in. It is only valid inside
// Resume, on the worker's own goroutine.
type Worker struct {
	id    int
	s     *Scheduler
	queue WorkQueue
	rng   *xoshiro.Rand
	stats workerStats
}

func (w *Worker) ID() int { return w.id }

func (w *Worker) Scheduler() *Scheduler { return w.s }

// Schedule pushes t onto the worker's own slot. It does not wake anyone;
// idle workers find the task by stealing.
func (w *Worker) Schedule(t *Task) {
	w.queue.Push(t)
}

// Pop takes the most recently scheduled task from the worker's own slot.
func (w *Worker) Pop() (*Task, bool) {
	return w.queue.Pop()
}

type Scheduler struct {
	_       cpu.CacheLinePad
	actives atomic.Int64
	_       cpu.CacheLinePad
	thieves atomic.Int64
	_       cpu.CacheLinePad
	stop    atomic.Bool
	_       cpu.CacheLinePad

	name     string
	notifier Notifier
	// queues[len(workers)] is the external slot.
	queues  []WorkQueue
	workers []*Worker

	// extMu makes the external slot's owner end single-owner, since any
	// number of goroutines outside the pool may submit.
	extMu     sync.Mutex
	submitted atomic.Int64

	violations  atomic.Int64
	onViolation func(err error)

	log      *zap.SugaredLogger
	sleepLog rate.Sometimes

	group errgroup.Group
	once  sync.Once
}

// NewScheduler starts nbWorkers worker goroutines. nbWorkers <= 0 means
// runtime.GOMAXPROCS(0).
func NewScheduler(nbWorkers int, opts ...Option) *Scheduler {
	if nbWorkers <= 0 {
		nbWorkers = runtime.GOMAXPROCS(0)
	}
	o := loadOptions(opts...)

	s := &Scheduler{
		name:     o.name,
		notifier: o.notifier,
		queues:   make([]WorkQueue, nbWorkers+1),
		workers:  make([]*Worker, nbWorkers),
		log:      o.logger.Sugar().Named("scheduler").With("scheduler", o.name),
		sleepLog: rate.Sometimes{Interval: time.Second},
	}
	s.onViolation = o.onViolation
	if s.onViolation == nil {
		s.onViolation = s.panicOnViolation
	}

	for i := range s.queues {
		s.queues[i] = o.newQueue(o.queueCapacity)
	}

	base := xoshiro.New(o.seed)
	for id := range s.workers {
		s.workers[id] = &Worker{
			id:    id,
			s:     s,
			queue: s.queues[id],
			rng:   base.Stream(id),
		}
	}

	for _, w := range s.workers {
		s.group.Go(func() error {
			s.run(w)
			return nil
		})
	}

	s.log.Infow("scheduler started", "workers", nbWorkers)
	return s
}

func (s *Scheduler) Name() string { return s.name }

func (s *Scheduler) WorkerCount() int { return len(s.workers) }

// Schedule submits t from outside the pool. The task goes to the external
// slot and one sleeping worker is woken.
//
// After Close the task is dropped with a warning. A Schedule racing Close may
// instead push the task after every worker has exited; it then stays on the
// external slot, visible in Stats().Queued, and never runs. Callers must not
// rely on tasks submitted concurrently with Close.
func (s *Scheduler) Schedule(t *Task) {
	if s.stop.Load() {
		s.log.Warnw("task scheduled after close, dropping it")
		return
	}

	s.extMu.Lock()
	s.external().Push(t)
	s.extMu.Unlock()

	s.submitted.Add(1)
	s.notifier.NotifyOne()
}

// Pop takes the most recently submitted task back from the external slot.
func (s *Scheduler) Pop() (*Task, bool) {
	s.extMu.Lock()
	defer s.extMu.Unlock()
	return s.external().Pop()
}

// Close stops every worker and waits for them to exit. Workers keep draining
// work they can still find before observing the stop flag. Close is
// idempotent and must not be called from inside a continuation.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.stop.Store(true)
		s.notifier.NotifyAll()
		_ = s.group.Wait()
		s.log.Infow("scheduler stopped", "executed", s.Stats().Executed)
	})
}

func (s *Scheduler) Stats() Stats {
	st := Stats{
		Name:              s.name,
		Workers:           len(s.workers),
		Active:            s.actives.Load(),
		Thieves:           s.thieves.Load(),
		Queued:            make([]int, len(s.queues)),
		ExternalScheduled: s.submitted.Load(),
		Violations:        s.violations.Load(),
		Stopped:           s.stop.Load(),
	}
	for i, q := range s.queues {
		st.Queued[i] = q.Len()
	}
	for _, w := range s.workers {
		st.Executed += w.stats.executed.Load()
		st.Steals += w.stats.steals.Load()
		st.FailedStealRounds += w.stats.failedRounds.Load()
		st.Sleeps += w.stats.sleeps.Load()
	}
	return st
}

func (s *Scheduler) external() WorkQueue {
	return s.queues[len(s.workers)]
}

func (s *Scheduler) run(w *Worker) {
	var t *Task
	for {
		s.exploit(w, t)

		var out outcome
		t, out = s.waitForTask(w)
		if out == outcomeTerminate {
			s.log.Debugw("worker exiting", "worker", w.id)
			return
		}
	}
}

// exploit runs t and then whatever is left on the worker's own slot.
func (s *Scheduler) exploit(w *Worker, t *Task) {
	for t != nil {
		if s.actives.Add(1) == 1 && s.thieves.Load() == 0 {
			s.notifier.NotifyOne()
		}

		t.Resume(w)
		w.stats.executed.Add(1)

		if !w.queue.Empty() {
			s.violate(srvErrors.NewContractViolationError(
				"empty slot after resume",
				"worker %d has %d task(s) left on its own slot", w.id, w.queue.Len()))
		}

		s.actives.Add(-1)
		t, _ = w.queue.Pop()
	}
}

// waitForTask is the thief side of the worker loop. It either hands back a
// stolen task, reports that the worker slept and should look again, or
// reports that the scheduler is stopping.
func (s *Scheduler) waitForTask(w *Worker) (*Task, outcome) {
	var key eventcount.Key

	state := stateEnter
	for {
		switch state {
		case stateEnter:
			s.thieves.Add(1)
			state = stateStealRound

		case stateStealRound:
			if t, ok := s.stealRound(w); ok {
				s.leaveThieves()
				return t, outcomeFound
			}
			key = s.notifier.PrepareWait()
			state = stateRecheckExternal

		case stateRecheckExternal:
			// External work may have landed between the failed round and
			// PrepareWait.
			state = stateCheckStop
			if !s.external().Empty() {
				s.notifier.CancelWait(key)
				if t, ok := s.external().Steal(); ok {
					s.claim(w, t)
					s.leaveThieves()
					return t, outcomeFound
				}
				state = stateStealRound
			}

		case stateCheckStop:
			if s.stop.Load() {
				s.notifier.CancelWait(key)
				s.notifier.NotifyAll()
				s.thieves.Add(-1)
				return nil, outcomeTerminate
			}
			state = stateMaybeSleep

		case stateMaybeSleep:
			// The last thief stays up while anyone is still running: active
			// workers may fork more work.
			if s.thieves.Add(-1) == 0 && s.actives.Load() > 0 {
				s.notifier.CancelWait(key)
				state = stateEnter
				continue
			}
			state = stateSleeping

		case stateSleeping:
			w.stats.sleeps.Add(1)
			s.sleepLog.Do(func() {
				s.log.Debugw("worker sleeping", "worker", w.id)
			})
			s.notifier.Wait(key)
			return nil, outcomeRetry
		}
	}
}

// stealRound makes up to WorkerCount attempts against random victims. Drawing
// the worker's own index targets the external slot instead.
func (s *Scheduler) stealRound(w *Worker) (*Task, bool) {
	n := len(s.workers)
	for range n {
		victim := w.rng.Intn(n)

		q := s.queues[victim]
		if victim == w.id {
			q = s.external()
		}

		if t, ok := q.Steal(); ok {
			s.claim(w, t)
			return t, true
		}
	}
	w.stats.failedRounds.Add(1)
	return nil, false
}

func (s *Scheduler) claim(w *Worker, t *Task) {
	w.stats.steals.Add(1)
	if t.join == nil {
		s.violate(srvErrors.NewContractViolationError(
			"join counter on stolen task", "worker %d stole a task without a join counter", w.id))
		return
	}
	t.join.Add(1)
}

func (s *Scheduler) leaveThieves() {
	if s.thieves.Add(-1) == 0 {
		s.notifier.NotifyOne()
	}
}

func (s *Scheduler) violate(err error) {
	s.violations.Add(1)
	s.onViolation(err)
}

func (s *Scheduler) panicOnViolation(err error) {
	s.log.Errorw("scheduler contract violated", "error", err)
	panic(err)
}
