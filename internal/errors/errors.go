package errors

import (
	"errors"
	"fmt"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// Exit codes for vlsm-ctl
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitInvalidInput     = 2
	ExitCapacityExceeded = 3
	ExitConfigError      = 4
	ExitPlanNotFound     = 5
)

// CtlError is the base error type for vlsm-ctl
type CtlError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CtlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CtlError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CtlError) ExitCode() int {
	return e.Code
}

// New creates a new CtlError
func New(code int, message string) *CtlError {
	return &CtlError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CtlError
func Wrap(code int, message string, cause error) *CtlError {
	return &CtlError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// InvalidInput returns an error for malformed allocation input
func InvalidInput(cause error) *CtlError {
	return Wrap(ExitInvalidInput, "cannot plan network", cause)
}

// CapacityExceeded returns an error for demands that do not fit
func CapacityExceeded(cause error) *CtlError {
	return Wrap(ExitCapacityExceeded, "cannot plan network", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *CtlError {
	return Wrap(ExitConfigError, message, cause)
}

// PlanNotFound returns an error for a missing plan file
func PlanNotFound(name string) *CtlError {
	return New(ExitPlanNotFound, fmt.Sprintf("plan not found: %s", name))
}

// ValidationError returns an error for command usage failures
func ValidationError(message string) *CtlError {
	return New(ExitGeneralError, message)
}

// FromAllocation classifies an allocator or parser error by its sentinel.
// Errors that already carry an exit code are returned unchanged.
func FromAllocation(err error) error {
	if err == nil {
		return nil
	}
	var ctlErr *CtlError
	if errors.As(err, &ctlErr) {
		return err
	}
	switch {
	case errors.Is(err, vlsm.ErrCapacityExceeded):
		return CapacityExceeded(err)
	case errors.Is(err, vlsm.ErrInvalidInput):
		return InvalidInput(err)
	}
	return err
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var ctlErr *CtlError
	if errors.As(err, &ctlErr) {
		return ctlErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
