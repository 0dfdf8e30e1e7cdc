package bench

import (
	"sync/atomic"

	"github.com/kubev2v/forkpool/pkg/scheduler"
)

// tree is the shared state of one run. Every task of the run carries &join,
// so once the run is over join holds the number of steals it suffered.
type tree struct {
	join    atomic.Int64
	pending atomic.Int64
	value   atomic.Int64
	tasks   atomic.Int64
}

func (t *tree) done() bool { return t.pending.Load() == 0 }

// fibNode computes fib(n) by forking fib(n-1) and fib(n-2) onto its worker's
// slot and then running whatever is still there. Children that were stolen in
// the meantime are finished by the thief.
type fibNode struct {
	n    int
	tree *tree
}

func (f *fibNode) Resume(w *scheduler.Worker) {
	t := f.tree
	t.tasks.Add(1)

	if f.n < 2 {
		t.value.Add(int64(f.n))
	} else {
		t.pending.Add(2)
		w.Schedule(scheduler.NewTask(&fibNode{n: f.n - 1, tree: t}, &t.join))
		w.Schedule(scheduler.NewTask(&fibNode{n: f.n - 2, tree: t}, &t.join))
		drain(w)
	}

	t.pending.Add(-1)
}

// leaf is one unit of the spray workload.
type leaf struct {
	tree *tree
}

func (l *leaf) Resume(*scheduler.Worker) {
	l.tree.tasks.Add(1)
	l.tree.value.Add(1)
	l.tree.pending.Add(-1)
}

// drain empties the worker's own slot. A continuation that forks must call it
// before returning.
func drain(w *scheduler.Worker) {
	for t, ok := w.Pop(); ok; t, ok = w.Pop() {
		t.Resume(w)
	}
}

// Fib is the sequential reference for the fib workload.
func Fib(n int) int64 {
	a, b := int64(0), int64(1)
	for range n {
		a, b = b, a+b
	}
	return a
}

// FibTasks is the number of nodes in the fib(n) call tree.
func FibTasks(n int) int64 {
	return 2*Fib(n+1) - 1
}
