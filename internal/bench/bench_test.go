package bench_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/forkpool/internal/bench"
	"github.com/kubev2v/forkpool/internal/models"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
	"github.com/kubev2v/forkpool/pkg/scheduler"
)

var _ = Describe("Fib", func() {
	DescribeTable("sequential reference",
		func(n int, want, nodes int64) {
			Expect(bench.Fib(n)).To(Equal(want))
			Expect(bench.FibTasks(n)).To(Equal(nodes))
		},
		Entry("0", 0, int64(0), int64(1)),
		Entry("1", 1, int64(1), int64(1)),
		Entry("2", 2, int64(1), int64(3)),
		Entry("10", 10, int64(55), int64(177)),
	)
})

var _ = Describe("Run", func() {
	var (
		ctx        context.Context
		s          *scheduler.Scheduler
		violations atomic.Int64
	)

	BeforeEach(func() {
		ctx = context.Background()
		violations.Store(0)
		s = scheduler.NewScheduler(4, scheduler.WithViolationHandler(func(error) {
			violations.Add(1)
		}))
	})

	AfterEach(func() {
		s.Close()
	})

	// Given a four-worker scheduler
	// When the fib workload runs from outside the pool
	// Then it computes fib(n) by running every node of the call tree exactly once
	It("should compute fib by forking", func() {
		res, err := bench.Run(ctx, s, models.RunParams{Workload: models.WorkloadFib, Size: 18, Timeout: 10 * time.Second})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(Equal(bench.Fib(18)))
		Expect(res.Tasks).To(Equal(bench.FibTasks(18)))
		Expect(res.Duration).To(BeNumerically(">", 0))
		Expect(violations.Load()).To(BeZero())
	})

	// Given a run whose tasks all share one join counter
	// When the run finishes
	// Then the join counter equals the steals the scheduler counted, the root included
	It("should count every steal on the join counter", func() {
		res, err := bench.Run(ctx, s, models.RunParams{Workload: models.WorkloadFib, Size: 16, Timeout: 10 * time.Second})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Steals).To(BeNumerically(">=", 1))
		Expect(res.Steals).To(Equal(res.Stats.Steals))
	})

	// Given the spray workload
	// When every leaf is submitted externally
	// Then each leaf is stolen from the external slot exactly once
	It("should deliver sprayed tasks exactly once", func() {
		res, err := bench.Run(ctx, s, models.RunParams{Workload: models.WorkloadSpray, Size: 2000, Timeout: 10 * time.Second})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Tasks).To(BeEquivalentTo(2000))
		Expect(res.Value).To(BeEquivalentTo(2000))
		Expect(res.Stats.ExternalScheduled).To(BeEquivalentTo(2000))
		Expect(res.Steals).To(BeEquivalentTo(2000))
		Expect(violations.Load()).To(BeZero())
	})

	It("should convert a result into a history record", func() {
		res, err := bench.Run(ctx, s, models.RunParams{Workload: models.WorkloadFib, Size: 10})
		Expect(err).NotTo(HaveOccurred())

		run := res.ToRun("abc")
		Expect(run.ID).To(Equal("abc"))
		Expect(run.Pool).To(Equal(s.Name()))
		Expect(run.Workers).To(Equal(4))
		Expect(run.Value).To(BeEquivalentTo(55))
	})

	DescribeTable("should reject invalid parameters",
		func(p models.RunParams) {
			_, err := bench.Run(ctx, s, p)
			Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())
		},
		Entry("unknown workload", models.RunParams{Workload: "matmul", Size: 1}),
		Entry("fib too large", models.RunParams{Workload: models.WorkloadFib, Size: bench.MaxFibSize + 1}),
		Entry("negative fib", models.RunParams{Workload: models.WorkloadFib, Size: -1}),
		Entry("empty spray", models.RunParams{Workload: models.WorkloadSpray, Size: 0}),
		Entry("negative timeout", models.RunParams{Workload: models.WorkloadFib, Size: 3, Timeout: -time.Second}),
	)

	It("should refuse a stopped scheduler", func() {
		s.Close()
		_, err := bench.Run(ctx, s, models.RunParams{Workload: models.WorkloadFib, Size: 3})
		Expect(err).To(MatchError(ContainSubstring("stopped")))
	})

	It("should honour a cancelled context", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := bench.Run(cctx, s, models.RunParams{Workload: models.WorkloadFib, Size: 25})
		Expect(err).To(MatchError(context.Canceled))
	})
})
