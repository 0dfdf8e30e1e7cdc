package util_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/forkpool/internal/util"
)

var _ = Describe("util", func() {
	It("should point at a copy", func() {
		v := 3
		p := util.Ptr(v)
		v = 4
		Expect(*p).To(Equal(3))
	})

	It("should round to two decimals", func() {
		Expect(util.Round(1.23456)).To(Equal(1.23))
		Expect(util.Round(2.005)).To(BeNumerically("~", 2.0, 0.011))
	})

	DescribeTable("PageCount",
		func(total, size, want int) {
			Expect(util.PageCount(total, size)).To(Equal(want))
		},
		Entry("empty", 0, 20, 1),
		Entry("exact", 40, 20, 2),
		Entry("partial", 41, 20, 3),
		Entry("bad size", 10, 0, 1),
	)
})
