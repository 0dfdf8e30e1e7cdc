// Package scheduler implements a work-stealing fork-join scheduler.
//
// The scheduler runs a fixed pool of workers. Every worker owns a private
// double-ended queue (a slot); idle workers steal from random slots and go
// to sleep on an event count when there is nothing left to steal.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  actives ░░ thieves ░░ stop          (each on its own cache line)   │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │  Worker N-1  │       │
//	│  │  slot 0      │      │  slot 1      │      │  slot N-1    │       │
//	│  │  push/pop ▼  │      │  push/pop ▼  │      │  push/pop ▼  │       │
//	│  │  [t][t][t]   │      │  [t]         │      │              │       │
//	│  │  steal    ▲  │      │  steal    ▲  │      │  steal    ▲  │       │
//	│  └──────┬───────┘      └──────┬───────┘      └──────┬───────┘       │
//	│         │     random victims  │                     │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │                                     │
//	│                     ┌─────────┴─────────┐                           │
//	│                     │  external slot N  │ ◄── Schedule(t) + notify  │
//	│                     └───────────────────┘                           │
//	│                                                                     │
//	│                     ┌───────────────────┐                           │
//	│                     │    event count    │  sleeping workers         │
//	│                     └───────────────────┘                           │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
// Scheduler:
//   - N workers plus one external slot for goroutines outside the pool
//   - active and thief counters that decide when to wake another worker
//   - a stop flag, set once by Close
//
// Worker:
//   - The context handed to every continuation it resumes
//   - Schedule/Pop on its own slot, no locking
//   - Its own xoshiro256** stream for victim selection
//
// Task:
//   - A Continuation plus the join counter of the fork it belongs to
//   - The join counter is incremented once per successful steal
//
// # Worker Loop
//
//	for {
//	    exploit(task)          // run task, then drain own slot
//	    task = waitForTask()   // steal, or sleep, or stop
//	}
//
// exploit bumps the active count around every resume. When the count goes
// from 0 to 1 and nobody is stealing, one sleeper is woken: the new runner is
// likely to fork work. After each resume the worker's own slot must be empty.
//
// # Idle Protocol
//
//	┌──────────┐  steal ok   ┌───────┐
//	│  enter   │────────────►│ found │
//	│ thieves++│             └───────┘
//	└────┬─────┘
//	     ▼
//	┌─────────────┐ fail  ┌─────────────────┐ non-empty ┌──────────────┐
//	│ steal round │──────►│ prepare wait    │──────────►│ cancel, take │
//	└─────────────┘       │ recheck external│           │ external     │
//	     ▲                └────────┬────────┘           └──────────────┘
//	     │                         ▼
//	     │                ┌─────────────────┐ set  ┌─────────────────────┐
//	     │                │   check stop    │─────►│ cancel, notify all, │
//	     │                └────────┬────────┘      │ terminate           │
//	     │                         ▼               └─────────────────────┘
//	     │                ┌─────────────────┐
//	     └────────────────│ last thief and  │ yes: cancel and retry
//	                      │ actives > 0 ?   │
//	                      └────────┬────────┘
//	                               ▼ no
//	                      ┌─────────────────┐
//	                      │ wait, then retry│
//	                      └─────────────────┘
//
// Registering the wait before re-checking the external slot and the stop flag
// means a Schedule or Close that lands in between still wakes the worker.
// The last thief never sleeps while some worker is active, so forked work is
// always picked up.
//
// # Steal Round
//
// A round draws WorkerCount random victims. Drawing the worker's own index
// steals from the external slot instead; a worker never steals from itself.
// The first successful steal ends the round and increments the stolen task's
// join counter.
//
// # External Callers
//
// Goroutines outside the pool have no slot of their own. They all share the
// external slot through Scheduler.Schedule and Scheduler.Pop, which serialize
// on a mutex; only workers can reach a worker slot, through the *Worker
// passed to Resume.
//
// # Contract Violations
//
// A continuation that returns with tasks left on its worker's slot, or a
// stolen task with a nil join counter, is a programming error. The default
// handler logs it and panics; WithViolationHandler overrides that.
//
// # Usage Example
//
//	s := scheduler.NewScheduler(4)
//	defer s.Close()
//
//	var join atomic.Int64
//	done := make(chan struct{})
//
//	s.Schedule(scheduler.NewTask(scheduler.ContinuationFunc(func(w *scheduler.Worker) {
//	    w.Schedule(scheduler.NewTask(child, &join))
//	    // ... run own children until the slot is empty
//	    for t, ok := w.Pop(); ok; t, ok = w.Pop() {
//	        t.Resume(w)
//	    }
//	    close(done)
//	}), &join))
//
//	<-done
package scheduler
