package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("unauthorized: please login first")
	ErrForbidden       = errors.New("you are not allowed to delete this booking")
)

var (
	ErrReservationNotFound = errors.New("booking not found")
)

var (
	ErrCancellationWindowClosed = errors.New("cancellation window has closed")
	ErrRequestInProgress        = errors.New("request with this idempotency key is already being processed")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")
)

type ValidationReason string

const (
	ReasonInvalidDate          ValidationReason = "invalid_date"
	ReasonInvalidDuration      ValidationReason = "invalid_duration"
	ReasonInvalidCount         ValidationReason = "invalid_count"
	ReasonDateFullyBooked      ValidationReason = "date_fully_booked"
	ReasonInsufficientCapacity ValidationReason = "insufficient_capacity"
	ReasonMissingSessionTimes  ValidationReason = "missing_session_times"
	ReasonInvalidSessionOrder  ValidationReason = "invalid_session_order"
	ReasonSessionTooShort      ValidationReason = "session_too_short"
	ReasonSessionTooLong       ValidationReason = "session_too_long"
)

// ValidationError is a rejected booking request. Message is meant to be shown
// to the user as is.
type ValidationError struct {
	Reason  ValidationReason
	Message string
	// Available is set for ReasonInsufficientCapacity.
	Available int
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// CapacityRelated reports whether the rejection depends on current demand
// rather than on the request itself.
func (e *ValidationError) CapacityRelated() bool {
	return e.Reason == ReasonDateFullyBooked || e.Reason == ReasonInsufficientCapacity
}

func NewValidationError(reason ValidationReason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ReasonOf extracts the validation reason from err, or "" if err is not a
// validation error.
func ReasonOf(err error) ValidationReason {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason
	}
	return ""
}
