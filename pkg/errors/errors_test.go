package errors_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

var _ = Describe("errors", func() {
	It("should match wrapped errors by type", func() {
		err := fmt.Errorf("saving run: %w", srvErrors.NewRunNotFoundError("abc"))

		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		Expect(srvErrors.IsInvalidArgumentError(err)).To(BeFalse())
		Expect(err.Error()).To(Equal(`saving run: run "abc" not found`))
	})

	It("should format contract violations with and without detail", func() {
		Expect(srvErrors.NewContractViolationError("local-empty", "%d tasks left", 2).Error()).
			To(Equal("contract violation: local-empty: 2 tasks left"))
		Expect((&srvErrors.ContractViolationError{Contract: "join"}).Error()).
			To(Equal("contract violation: join"))
	})

	It("should keep the field of an invalid argument", func() {
		err := srvErrors.NewInvalidArgumentError("size", "must be positive")

		Expect(err.Field).To(Equal("size"))
		Expect(err.Error()).To(Equal("invalid size: must be positive"))
		Expect(srvErrors.IsContractViolationError(err)).To(BeFalse())
	})

	It("should recognise a run in progress", func() {
		Expect(srvErrors.IsRunInProgressError(srvErrors.NewRunInProgressError())).To(BeTrue())
		Expect(srvErrors.IsRunInProgressError(nil)).To(BeFalse())
	})
})
