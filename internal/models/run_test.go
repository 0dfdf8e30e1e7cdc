package models_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/forkpool/internal/models"
)

var _ = Describe("Run", func() {
	DescribeTable("ParseWorkload",
		func(in string, want models.Workload, ok bool) {
			w, err := models.ParseWorkload(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(w).To(Equal(want))
		},
		Entry("fib", "fib", models.WorkloadFib, true),
		Entry("spray", "spray", models.WorkloadSpray, true),
		Entry("unknown", "matmul", models.Workload(""), false),
	)

	It("should compute throughput", func() {
		r := models.Run{Tasks: 500, Duration: 250 * time.Millisecond}
		Expect(r.TasksPerSecond()).To(BeNumerically("~", 2000, 0.001))

		Expect(models.Run{Tasks: 10}.TasksPerSecond()).To(BeZero())
	})
})
