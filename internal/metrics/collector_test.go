package metrics_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kubev2v/forkpool/internal/metrics"
	"github.com/kubev2v/forkpool/pkg/scheduler"
)

type fixedStats scheduler.Stats

func (f fixedStats) Stats() scheduler.Stats { return scheduler.Stats(f) }

var _ = Describe("Collector", func() {
	var stats fixedStats

	BeforeEach(func() {
		stats = fixedStats{
			Name:              "p1",
			Workers:           2,
			Active:            1,
			Thieves:           1,
			Queued:            []int{3, 0, 5},
			Executed:          40,
			Steals:            12,
			FailedStealRounds: 7,
			Sleeps:            4,
			ExternalScheduled: 9,
		}
	})

	// Given a stats snapshot for two workers
	// When the collector is scraped
	// Then gauges and counters reflect the snapshot, one queue gauge per slot
	It("should export the snapshot", func() {
		c := metrics.NewCollector("forkpool", stats)

		expected := `
# HELP forkpool_scheduler_steals_total Successful steals.
# TYPE forkpool_scheduler_steals_total counter
forkpool_scheduler_steals_total{pool="p1"} 12
# HELP forkpool_scheduler_queued_tasks Tasks waiting on a slot.
# TYPE forkpool_scheduler_queued_tasks gauge
forkpool_scheduler_queued_tasks{pool="p1",slot="0"} 3
forkpool_scheduler_queued_tasks{pool="p1",slot="1"} 0
forkpool_scheduler_queued_tasks{pool="p1",slot="external"} 5
`
		err := testutil.CollectAndCompare(c, strings.NewReader(expected),
			"forkpool_scheduler_steals_total", "forkpool_scheduler_queued_tasks")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should emit every metric family", func() {
		c := metrics.NewCollector("forkpool", stats)
		// 10 single-series families plus one queue gauge per slot
		Expect(testutil.CollectAndCount(c)).To(Equal(10 + 3))
	})

	It("should tolerate registering twice", func() {
		reg := prometheus.NewPedanticRegistry()
		Expect(metrics.Register(reg, metrics.NewCollector("forkpool", stats))).To(Succeed())
		Expect(metrics.Register(reg, metrics.NewCollector("forkpool", stats))).To(Succeed())
	})

	It("should read a live scheduler", func() {
		s := scheduler.NewScheduler(1, scheduler.WithName("live"))
		defer s.Close()

		expected := `
# HELP forkpool_scheduler_workers Number of worker goroutines.
# TYPE forkpool_scheduler_workers gauge
forkpool_scheduler_workers{pool="live"} 1
# HELP forkpool_scheduler_stopped 1 once the scheduler has been closed.
# TYPE forkpool_scheduler_stopped gauge
forkpool_scheduler_stopped{pool="live"} 0
`
		c := metrics.NewCollector("forkpool", s)
		Expect(testutil.CollectAndCompare(c, strings.NewReader(expected),
			"forkpool_scheduler_workers", "forkpool_scheduler_stopped")).To(Succeed())
	})
})
