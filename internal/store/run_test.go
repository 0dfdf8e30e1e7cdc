package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/forkpool/internal/models"
	"github.com/kubev2v/forkpool/internal/store"
	"github.com/kubev2v/forkpool/internal/store/migrations"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

func newRun(id string, workload models.Workload, size int, createdAt time.Time) *models.Run {
	return &models.Run{
		ID:                id,
		Pool:              "test-pool",
		Workload:          workload,
		Size:              size,
		Workers:           4,
		Value:             int64(size * 2),
		Tasks:             int64(size * 3),
		Steals:            7,
		Duration:          1500 * time.Microsecond,
		FailedStealRounds: 11,
		Sleeps:            2,
		CreatedAt:         createdAt,
	}
}

var _ = Describe("RunStore", func() {
	var (
		ctx  context.Context
		s    *store.Store
		db   *sql.DB
		base time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		base = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		// Given an empty run store
		// When we get a run by id
		// Then it should return ResourceNotFoundError
		It("should return ResourceNotFoundError when the run does not exist", func() {
			// Act
			_, err := s.Runs().Get(ctx, "missing")

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given a saved run
		// When we get it by id
		// Then every field should round-trip
		It("should return the saved run", func() {
			// Arrange
			run := newRun("r1", models.WorkloadFib, 20, base)
			run.Violations = 1
			Expect(s.Runs().Save(ctx, run)).To(Succeed())

			// Act
			got, err := s.Runs().Get(ctx, "r1")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Pool).To(Equal("test-pool"))
			Expect(got.Workload).To(Equal(models.WorkloadFib))
			Expect(got.Size).To(Equal(20))
			Expect(got.Workers).To(Equal(4))
			Expect(got.Value).To(BeEquivalentTo(40))
			Expect(got.Tasks).To(BeEquivalentTo(60))
			Expect(got.Steals).To(BeEquivalentTo(7))
			Expect(got.Duration).To(Equal(1500 * time.Microsecond))
			Expect(got.FailedStealRounds).To(BeEquivalentTo(11))
			Expect(got.Sleeps).To(BeEquivalentTo(2))
			Expect(got.Violations).To(BeEquivalentTo(1))
			Expect(got.CreatedAt).To(BeTemporally("~", base, time.Second))
		})
	})

	Context("Save", func() {
		It("should stamp a missing creation time", func() {
			run := newRun("r1", models.WorkloadSpray, 100, time.Time{})
			Expect(s.Runs().Save(ctx, run)).To(Succeed())
			Expect(run.CreatedAt).NotTo(BeZero())
		})

		It("should reject a duplicate id", func() {
			Expect(s.Runs().Save(ctx, newRun("r1", models.WorkloadFib, 5, base))).To(Succeed())
			Expect(s.Runs().Save(ctx, newRun("r1", models.WorkloadFib, 5, base))).NotTo(Succeed())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			for i := 0; i < 6; i++ {
				workload := models.WorkloadFib
				if i%2 == 1 {
					workload = models.WorkloadSpray
				}
				run := newRun(fmt.Sprintf("r%d", i), workload, 10*(i+1), base.Add(time.Duration(i)*time.Minute))
				Expect(s.Runs().Save(ctx, run)).To(Succeed())
			}
		})

		// Given six runs saved a minute apart
		// When we list them without options
		// Then the newest should come first
		It("should list newest first", func() {
			runs, err := s.Runs().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(6))
			Expect(runs[0].ID).To(Equal("r5"))
			Expect(runs[5].ID).To(Equal("r0"))
		})

		It("should filter by workload", func() {
			runs, err := s.Runs().List(ctx, store.ByWorkload(models.WorkloadSpray))
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(3))
			for _, r := range runs {
				Expect(r.Workload).To(Equal(models.WorkloadSpray))
			}
		})

		It("should ignore an empty workload filter", func() {
			runs, err := s.Runs().List(ctx, store.ByWorkload())
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(6))
		})

		It("should filter by size range", func() {
			runs, err := s.Runs().List(ctx, store.BySizeRange(20, 40))
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(2))
		})

		It("should filter by pool", func() {
			runs, err := s.Runs().List(ctx, store.ByPool("other"))
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(BeEmpty())
		})

		It("should paginate", func() {
			page, err := s.Runs().List(ctx, store.WithLimit(2), store.WithOffset(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(2))
			Expect(page[0].ID).To(Equal("r3"))
			Expect(page[1].ID).To(Equal("r2"))
		})

		It("should count with the same filters", func() {
			n, err := s.Runs().Count(ctx, store.ByWorkload(models.WorkloadFib))
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(3))
		})
	})

	Context("Delete", func() {
		It("should delete an existing run", func() {
			Expect(s.Runs().Save(ctx, newRun("r1", models.WorkloadFib, 5, base))).To(Succeed())
			Expect(s.Runs().Delete(ctx, "r1")).To(Succeed())

			_, err := s.Runs().Get(ctx, "r1")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return ResourceNotFoundError for an unknown run", func() {
			err := s.Runs().Delete(ctx, "missing")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
