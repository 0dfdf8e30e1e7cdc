package main

import (
	"os"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/kubev2v/forkpool/api/v1"
	"github.com/kubev2v/forkpool/test/e2e/infra"
	"github.com/kubev2v/forkpool/test/e2e/service"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

var _ = Describe("forkpool serve", Ordered, func() {
	var (
		svc     *service.ForkpoolSvc
		dataDir string
	)

	BeforeAll(func() {
		dataDir = cfg.DataDir
		if dataDir == "" {
			var err error
			dataDir, err = os.MkdirTemp("", "forkpool-e2e-")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(os.RemoveAll, dataDir)
		}

		apiURL, err := infraManager.StartForkpool(infra.ServeConfig{
			HTTPPort:   cfg.HTTPPort,
			Workers:    cfg.Workers,
			DataFolder: dataDir,
			LogLevel:   "info",
		})
		Expect(err).NotTo(HaveOccurred())

		svc, err = service.NewForkpoolService(apiURL)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterAll(func() {
		Expect(infraManager.StopForkpool()).To(Succeed())
	})

	// Given a fresh server
	// When the pool is inspected
	// Then it is running and idle
	It("reports an idle pool", func() {
		pool, err := svc.Pool()
		Expect(err).NotTo(HaveOccurred())
		Expect(pool.Stopped).To(BeFalse())
		Expect(pool.Bench.State).To(Equal(v1.BenchStatusStateReady))
	})

	It("runs fib and records it", func() {
		run, err := svc.Run("fib", 22)
		Expect(err).NotTo(HaveOccurred())
		Expect(run.Value).To(BeEquivalentTo(17711))
		Expect(run.Violations).To(BeZero())

		got, err := svc.GetRun(run.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Tasks).To(Equal(run.Tasks))
	})

	It("runs spray and delivers every task once", func() {
		run, err := svc.Run("spray", 50000)
		Expect(err).NotTo(HaveOccurred())
		Expect(run.Tasks).To(BeEquivalentTo(50000))
		Expect(run.Steals).To(BeEquivalentTo(50000))
	})

	// Given several clients posting at once
	// When their runs overlap
	// Then every request either succeeds or is refused with a conflict
	It("serializes concurrent runs", func() {
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			ok, busy int
			failures  []error
		)
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				_, err := svc.Run("fib", 24)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case srvErrors.IsRunInProgressError(err):
					busy++
				default:
					failures = append(failures, err)
				}
			}()
		}
		wg.Wait()

		Expect(failures).To(BeEmpty())
		Expect(ok).To(BeNumerically(">=", 1))
		Expect(ok + busy).To(Equal(4))
	})

	It("keeps history across a restart", func() {
		if cfg.InfraMode != "process" {
			Skip("restart needs process mode")
		}
		before, err := svc.ListRuns()
		Expect(err).NotTo(HaveOccurred())

		Expect(infraManager.RestartForkpool()).To(Succeed())

		after, err := svc.ListRuns()
		Expect(err).NotTo(HaveOccurred())
		Expect(after.Total).To(Equal(before.Total))
	})
})
