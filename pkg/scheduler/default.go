package scheduler

import "sync"

var (
	defaultScheduler *Scheduler
	defaultMu        sync.Mutex
)

// Default returns the process-wide scheduler, creating it with
// runtime.GOMAXPROCS(0) workers on first use.
func Default() *Scheduler {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultScheduler == nil {
		defaultScheduler = NewScheduler(0, WithName("default"))
	}
	return defaultScheduler
}

// Shutdown closes the process-wide scheduler, if it was ever created. A later
// call to Default starts a fresh one.
func Shutdown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultScheduler != nil {
		defaultScheduler.Close()
		defaultScheduler = nil
	}
}

// Schedule submits t to the process-wide scheduler's external slot.
func Schedule(t *Task) {
	Default().Schedule(t)
}

// Pop takes a task back from the process-wide scheduler's external slot.
func Pop() (*Task, bool) {
	return Default().Pop()
}
