package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kubev2v/forkpool/pkg/scheduler"
)

// StatsProvider is satisfied by *scheduler.Scheduler.
type StatsProvider interface {
	Stats() scheduler.Stats
}

// Collector exports a scheduler's Stats snapshot on every scrape.
type Collector struct {
	provider StatsProvider

	workers      *prometheus.Desc
	active       *prometheus.Desc
	thieves      *prometheus.Desc
	queued       *prometheus.Desc
	stopped      *prometheus.Desc
	executed     *prometheus.Desc
	steals       *prometheus.Desc
	failedRounds *prometheus.Desc
	sleeps       *prometheus.Desc
	external     *prometheus.Desc
	violations   *prometheus.Desc
}

func NewCollector(namespace string, provider StatsProvider) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "scheduler", name),
			help,
			append([]string{"pool"}, labels...),
			nil,
		)
	}

	return &Collector{
		provider:     provider,
		workers:      desc("workers", "Number of worker goroutines."),
		active:       desc("active_workers", "Workers currently resuming a task."),
		thieves:      desc("thieves", "Workers currently looking for work to steal."),
		queued:       desc("queued_tasks", "Tasks waiting on a slot.", "slot"),
		stopped:      desc("stopped", "1 once the scheduler has been closed."),
		executed:     desc("executed_total", "Tasks run from the worker loop."),
		steals:       desc("steals_total", "Successful steals."),
		failedRounds: desc("failed_steal_rounds_total", "Steal rounds that found nothing."),
		sleeps:       desc("sleeps_total", "Times a worker went to sleep."),
		external:     desc("external_scheduled_total", "Tasks submitted from outside the pool."),
		violations:   desc("contract_violations_total", "Detected contract violations."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workers
	ch <- c.active
	ch <- c.thieves
	ch <- c.queued
	ch <- c.stopped
	ch <- c.executed
	ch <- c.steals
	ch <- c.failedRounds
	ch <- c.sleeps
	ch <- c.external
	ch <- c.violations
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.provider.Stats()

	gauge := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, append([]string{st.Name}, labels...)...)
	}
	counter := func(d *prometheus.Desc, v int64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), st.Name)
	}

	gauge(c.workers, float64(st.Workers))
	gauge(c.active, float64(st.Active))
	gauge(c.thieves, float64(st.Thieves))
	for i, n := range st.Queued {
		gauge(c.queued, float64(n), slotLabel(i, st.Workers))
	}
	stopped := 0.0
	if st.Stopped {
		stopped = 1
	}
	gauge(c.stopped, stopped)

	counter(c.executed, st.Executed)
	counter(c.steals, st.Steals)
	counter(c.failedRounds, st.FailedStealRounds)
	counter(c.sleeps, st.Sleeps)
	counter(c.external, st.ExternalScheduled)
	counter(c.violations, st.Violations)
}

func slotLabel(i, workers int) string {
	if i == workers {
		return "external"
	}
	return strconv.Itoa(i)
}

// Register adds c to reg. A collector that is already registered is not an
// error.
func Register(reg prometheus.Registerer, c prometheus.Collector) error {
	err := reg.Register(c)
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return nil
	}
	return err
}
