// Package eventcount provides a blocking wait/notify primitive with a
// two-phase wait.
//
// A waiter first announces itself with PrepareWait, then re-checks whatever
// condition it is about to sleep on, and finally either commits with Wait or
// backs out with CancelWait. Any NotifyOne or NotifyAll issued after
// PrepareWait returns reaches that waiter, so the re-check and the sleep
// cannot race with a producer:
//
//	key := ec.PrepareWait()
//	if conditionHolds() {
//		ec.CancelWait(key)
//		return
//	}
//	ec.Wait(key)
//
// A waiter picked by NotifyOne that then cancels hands the wakeup to the
// next prepared waiter instead of swallowing it.
package eventcount

import "sync"

type waiter struct {
	ch       chan struct{}
	notified bool
	// single is set when the wakeup came from NotifyOne.
	single bool
}

// Key identifies one prepared wait. It must be passed to exactly one of Wait
// or CancelWait.
type Key struct {
	w *waiter
}

// EventCount is safe for concurrent use. The zero value is ready to use.
type EventCount struct {
	mu      sync.Mutex
	waiters []*waiter
}

// New returns an EventCount.
func New() *EventCount {
	return &EventCount{}
}

// PrepareWait registers the caller as a waiter.
func (e *EventCount) PrepareWait() Key {
	w := &waiter{ch: make(chan struct{}, 1)}

	e.mu.Lock()
	e.waiters = append(e.waiters, w)
	e.mu.Unlock()

	return Key{w: w}
}

// CancelWait withdraws a prepared wait. A NotifyOne that already picked this
// waiter is passed on to the oldest remaining waiter, so the wakeup still
// reaches someone who committed to sleep.
func (e *EventCount) CancelWait(k Key) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !k.w.notified {
		e.remove(k.w)
		return
	}
	if k.w.single {
		k.w.single = false
		e.notifyOne()
	}
}

// Wait blocks until the prepared waiter is notified. It returns immediately
// if a notification arrived between PrepareWait and Wait.
func (e *EventCount) Wait(k Key) {
	<-k.w.ch
}

// NotifyOne wakes the oldest prepared waiter, if any.
func (e *EventCount) NotifyOne() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notifyOne()
}

// NotifyAll wakes every prepared waiter.
func (e *EventCount) NotifyAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, w := range e.waiters {
		e.wake(w)
		e.waiters[i] = nil
	}
	e.waiters = e.waiters[:0]
}

// Waiters returns the number of prepared, not yet notified waiters.
func (e *EventCount) Waiters() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.waiters)
}

func (e *EventCount) notifyOne() {
	if len(e.waiters) == 0 {
		return
	}
	w := e.waiters[0]
	e.waiters[0] = nil
	e.waiters = e.waiters[1:]
	e.wake(w)
	w.single = true
}

func (e *EventCount) wake(w *waiter) {
	w.notified = true
	w.ch <- struct{}{}
}

func (e *EventCount) remove(w *waiter) {
	for i, cur := range e.waiters {
		if cur == w {
			copy(e.waiters[i:], e.waiters[i+1:])
			e.waiters[len(e.waiters)-1] = nil
			e.waiters = e.waiters[:len(e.waiters)-1]
			return
		}
	}
}
