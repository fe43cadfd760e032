package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyLinkList is returned when an issue has no primary link.
var ErrEmptyLinkList = errors.New("no primary link")

// ParseError reports a reference time that is not an RFC 3339 timestamp.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse reference time %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RenderError wraps a template failure.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render newsletter: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// EmailServiceError wraps a failed call to the email service. StatusCode is
// zero when the request never got a response.
type EmailServiceError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *EmailServiceError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("email service %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("email service %s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("email service %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("email service %s failed", e.Op)
	}
}

func (e *EmailServiceError) Unwrap() error { return e.Err }
