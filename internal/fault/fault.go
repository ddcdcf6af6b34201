// Package fault defines the error taxonomy shared by the guards and the API
// layer, with a 1:1 mapping from error kind to HTTP status.
package fault

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes a failure for status mapping and dispatch.
type Kind string

const (
	// KindNotFound indicates a referenced entity is absent.
	KindNotFound Kind = "not_found"
	// KindUnavailable indicates an area is marked not bookable.
	KindUnavailable Kind = "unavailable"
	// KindConflict indicates a slot or unique field is already taken.
	KindConflict Kind = "conflict"
	// KindDuplicateVote indicates the user already voted in the session.
	KindDuplicateVote Kind = "duplicate_vote"
	// KindSessionClosed indicates a vote outside the session's open window.
	KindSessionClosed Kind = "session_closed"
	// KindValidation indicates malformed or missing input.
	KindValidation Kind = "validation"
	// KindStoreUnavailable indicates a transient store failure.
	KindStoreUnavailable Kind = "store_unavailable"
)

// Error is a categorized failure carrying a human-readable message that names
// the offending resource.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the transport status for this error's kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindDuplicateVote:
		return http.StatusConflict
	case KindUnavailable, KindSessionClosed, KindValidation:
		return http.StatusBadRequest
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unavailable creates an area-not-bookable error.
func Unavailable(format string, args ...any) *Error {
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a slot-taken error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// DuplicateVote creates an already-voted error.
func DuplicateVote(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicateVote, Message: fmt.Sprintf(format, args...)}
}

// SessionClosed creates a vote-outside-window error.
func SessionClosed(format string, args ...any) *Error {
	return &Error{Kind: KindSessionClosed, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a malformed-input error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// StoreUnavailable wraps a transient store failure.
func StoreUnavailable(cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: "data store unavailable", Cause: cause}
}

// KindOf extracts the Kind from err, or empty string for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusOf returns the HTTP status for err, defaulting to 500 for foreign
// errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
