package domain

import (
	"errors"
	"fmt"
)

// RequestErrorKind identifies why a checkout request was rejected. All
// kinds are terminal, caller-caused conditions; none are retryable.
type RequestErrorKind string

const (
	ErrKindInvalidDayCount RequestErrorKind = "INVALID_DAY_COUNT"
	ErrKindInvalidDiscount RequestErrorKind = "INVALID_DISCOUNT"
	ErrKindMissingToolCode RequestErrorKind = "MISSING_TOOL_CODE"
	ErrKindToolNotFound    RequestErrorKind = "TOOL_NOT_FOUND"
	ErrKindDateParse       RequestErrorKind = "DATE_PARSE_ERROR"
)

// RequestError carries one of the fixed failure kinds plus a human-readable
// reason. It is returned, never panicked, so every failure path is visible
// at the call site.
type RequestError struct {
	Kind    RequestErrorKind
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// NewRequestError builds a RequestError with a formatted message.
func NewRequestError(kind RequestErrorKind, format string, args ...any) *RequestError {
	return &RequestError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// RequestErrorKindOf extracts the failure kind from an error chain. The
// second return is false for infrastructure errors that did not originate
// from request validation or tool resolution.
func RequestErrorKindOf(err error) (RequestErrorKind, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return "", false
}
