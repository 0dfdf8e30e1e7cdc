package deque

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

const defaultCapacity = 64

type ring[T any] struct {
	mask  int64
	slots []atomic.Pointer[T]
}

func newRing[T any](capacity int64) *ring[T] {
	return &ring[T]{
		mask:  capacity - 1,
		slots: make([]atomic.Pointer[T], capacity),
	}
}

func (r *ring[T]) capacity() int64 { return r.mask + 1 }

func (r *ring[T]) get(i int64) *T { return r.slots[i&r.mask].Load() }

func (r *ring[T]) put(i int64, v *T) { r.slots[i&r.mask].Store(v) }

// grow copies the live range [top, bottom) into a ring twice the size.
func (r *ring[T]) grow(top, bottom int64) *ring[T] {
	next := newRing[T](r.capacity() << 1)
	for i := top; i < bottom; i++ {
		next.put(i, r.get(i))
	}
	return next
}

// Deque is a Chase-Lev work-stealing deque.
//
// The owner pushes and pops at the bottom (LIFO). Any goroutine may steal from
// the top (FIFO). Push and Pop must only ever be called by one goroutine at a
// time; Steal is safe from any number of goroutines concurrently with them.
type Deque[T any] struct {
	_      cpu.CacheLinePad
	top    atomic.Int64
	_      cpu.CacheLinePad
	bottom atomic.Int64
	_      cpu.CacheLinePad
	buf    atomic.Pointer[ring[T]]
}

// New returns an empty deque. capacity is rounded up to a power of two and
// only sets the initial size; the deque grows as needed.
func New[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	d := &Deque[T]{}
	d.buf.Store(newRing[T](nextPowerOfTwo(int64(capacity))))
	return d
}

// Push adds v at the bottom. Owner only.
func (d *Deque[T]) Push(v *T) {
	b := d.bottom.Load()
	t := d.top.Load()
	r := d.buf.Load()

	if b-t >= r.capacity()-1 {
		r = r.grow(t, b)
		d.buf.Store(r)
	}

	r.put(b, v)
	d.bottom.Store(b + 1)
}

// Pop removes the most recently pushed element. Owner only.
func (d *Deque[T]) Pop() (*T, bool) {
	b := d.bottom.Load() - 1
	r := d.buf.Load()
	d.bottom.Store(b)

	t := d.top.Load()
	if t > b {
		d.bottom.Store(b + 1)
		return nil, false
	}

	v := r.get(b)
	if t == b {
		// Last element: race the thieves for it.
		won := d.top.CompareAndSwap(t, t+1)
		d.bottom.Store(b + 1)
		if !won {
			return nil, false
		}
	}
	return v, true
}

// Steal removes the oldest element. It reports false when the deque is empty
// or when another thief or the owner claimed the element first.
func (d *Deque[T]) Steal() (*T, bool) {
	t := d.top.Load()
	b := d.bottom.Load()
	if t >= b {
		return nil, false
	}

	r := d.buf.Load()
	v := r.get(t)
	if !d.top.CompareAndSwap(t, t+1) {
		return nil, false
	}
	return v, true
}

// Len is a snapshot of the number of elements.
func (d *Deque[T]) Len() int {
	n := d.bottom.Load() - d.top.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}

// Empty is a snapshot; it may be stale as soon as it returns.
func (d *Deque[T]) Empty() bool {
	return d.Len() == 0
}

// Cap returns the current ring capacity.
func (d *Deque[T]) Cap() int {
	return int(d.buf.Load().capacity())
}

func nextPowerOfTwo(n int64) int64 {
	p := int64(1)
	for p < n {
		p <<= 1
	}
	return p
}
