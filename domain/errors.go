package domain

import "fmt"

type ErrorCategory string

const (
	ErrNotFound            ErrorCategory = "not_found"
	ErrConflict            ErrorCategory = "conflict"
	ErrValidationFailed    ErrorCategory = "validation_failed"
	ErrUnauthorized        ErrorCategory = "unauthorized"
	ErrUpstreamUnavailable ErrorCategory = "upstream_unavailable"
)

// Error is the outcome surfaced to the caller for every failed request:
// a category from the fixed taxonomy plus a human-readable detail.
type Error struct {
	Category ErrorCategory `json:"category"`
	Detail   string        `json:"detail"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Detail)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Category: ErrNotFound, Detail: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Category: ErrConflict, Detail: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Category: ErrValidationFailed, Detail: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...interface{}) *Error {
	return &Error{Category: ErrUnauthorized, Detail: fmt.Sprintf(format, args...)}
}

func Upstreamf(format string, args ...interface{}) *Error {
	return &Error{Category: ErrUpstreamUnavailable, Detail: fmt.Sprintf(format, args...)}
}
