package errors

import (
	"errors"
	"fmt"
)

// ContractViolationError is raised when a caller breaks a scheduler invariant,
// e.g. a continuation returning with work left on its own slot.
type ContractViolationError struct {
	Contract string
	Detail   string
}

func (e *ContractViolationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("contract violation: %s", e.Contract)
	}
	return fmt.Sprintf("contract violation: %s: %s", e.Contract, e.Detail)
}

func NewContractViolationError(contract, format string, args ...any) *ContractViolationError {
	return &ContractViolationError{Contract: contract, Detail: fmt.Sprintf(format, args...)}
}

func IsContractViolationError(err error) bool {
	var e *ContractViolationError
	return errors.As(err, &e)
}

type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewResourceNotFoundError(resource, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource, ID: id}
}

func NewRunNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("run", id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewInvalidArgumentError(field, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Reason: reason}
}

func IsInvalidArgumentError(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// RunInProgressError is returned when a benchmark run is requested while
// another one is still executing.
type RunInProgressError struct{}

func (e *RunInProgressError) Error() string {
	return "a run is already in progress"
}

func NewRunInProgressError() *RunInProgressError {
	return &RunInProgressError{}
}

func IsRunInProgressError(err error) bool {
	var e *RunInProgressError
	return errors.As(err, &e)
}
