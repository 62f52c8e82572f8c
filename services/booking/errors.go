package booking

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a coordinator failure so callers can tell a bad
// request from a processor-side failure, and a retryable outcome from one
// that needs new input.
type ErrorCode string

const (
	CodeValidation      ErrorCode = "validation"
	CodeNotFound        ErrorCode = "notFound"
	CodeAuthorization   ErrorCode = "authorization"
	CodeConflict        ErrorCode = "conflict"
	CodeUpstreamPayment ErrorCode = "upstreamPayment"
)

// BookingError is the coordinator's typed failure. Retryable means the same
// booking may be attempted again with a fresh payment intent; a non-retryable
// error needs new input (different dates, resource, or amount).
type BookingError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func NewUpstreamPaymentError(msg string, retryable bool) error {
	return &BookingError{Code: CodeUpstreamPayment, Message: msg, Retryable: retryable}
}

// CodeOf extracts the error code, or empty when err is not a BookingError.
func CodeOf(err error) ErrorCode {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
