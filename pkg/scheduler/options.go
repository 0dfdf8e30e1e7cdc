package scheduler

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/forkpool/pkg/deque"
	"github.com/kubev2v/forkpool/pkg/eventcount"
)

const defaultQueueCapacity = 256

type options struct {
	name          string
	queueCapacity int
	seed          uint64
	logger        *zap.Logger
	newQueue      func(capacity int) WorkQueue
	notifier      Notifier
	onViolation   func(err error)
}

type Option func(*options)

// WithName sets the name used in logs and metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithQueueCapacity sets the initial capacity of every slot.
func WithQueueCapacity(capacity int) Option {
	return func(o *options) { o.queueCapacity = capacity }
}

// WithSeed fixes the seed the per-worker victim streams are derived from.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithQueueFactory replaces the Chase-Lev deque used for every slot.
func WithQueueFactory(f func(capacity int) WorkQueue) Option {
	return func(o *options) { o.newQueue = f }
}

func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithViolationHandler replaces the default contract violation handling,
// which logs the violation and panics.
func WithViolationHandler(fn func(err error)) Option {
	return func(o *options) { o.onViolation = fn }
}

func loadOptions(opts ...Option) *options {
	o := &options{
		queueCapacity: defaultQueueCapacity,
		seed:          uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.name == "" {
		o.name = "forkpool-" + uuid.NewString()[:8]
	}
	if o.logger == nil {
		o.logger = zap.L()
	}
	if o.newQueue == nil {
		o.newQueue = func(capacity int) WorkQueue { return deque.New[Task](capacity) }
	}
	if o.notifier == nil {
		o.notifier = eventcount.New()
	}
	return o
}
