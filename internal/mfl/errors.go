package mfl

import (
	"errors"
	"fmt"
)

// ErrLoginMarkerNotFound is returned when the upstream login endpoint answers with a
// success status but the response body carries no MFL_USER_ID marker. MFL reports some
// login failures (e.g. bad credentials) this way instead of using an error status.
var ErrLoginMarkerNotFound = errors.New("login marker not found in upstream response")

// TransportError wraps a network-level failure: the request never completed, so no
// upstream status or body is available. Conceptually retryable, unlike the other kinds.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream request failed (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the upstream call completed but MFL answered with a
// non-success status. The body is preserved for diagnostics.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

// ParseError is returned when a success response does not match the expected export
// schema. Callers can tell "upstream rejected us" (StatusError) apart from "upstream
// accepted us but sent garbage" (ParseError).
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing upstream response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
