// Package apperrors holds the error taxonomy shared by services and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned by storage when a unique value is already taken.
	ErrDuplicate = errors.New("duplicate")

	// ErrInvalidCredentials is returned for both unknown usernames and wrong passwords.
	ErrInvalidCredentials = &AuthError{Message: "Invalid username or password"}

	// ErrUnauthenticated is returned when the session carries no user.
	ErrUnauthenticated = &AuthError{Message: "Authentication required"}
)

// ValidationError reports bad or duplicate input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthError reports failed authentication.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// UpstreamKind classifies failures of the external completion API.
type UpstreamKind string

const (
	UpstreamUnauthorized UpstreamKind = "unauthorized"
	UpstreamRateLimited  UpstreamKind = "rate_limited"
	UpstreamMalformed    UpstreamKind = "malformed"
	UpstreamTimeout      UpstreamKind = "timeout"
	UpstreamUnknown      UpstreamKind = "unknown"
)

// UpstreamError reports a failed call to the external completion API.
type UpstreamError struct {
	Kind UpstreamKind
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream error (%s)", e.Kind)
	}
	return fmt.Sprintf("upstream error (%s): %v", e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err with the given kind.
func NewUpstreamError(kind UpstreamKind, err error) *UpstreamError {
	return &UpstreamError{Kind: kind, Err: err}
}

// IsUpstreamKind reports whether err is an UpstreamError of the given kind.
func IsUpstreamKind(err error, kind UpstreamKind) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr) && upErr.Kind == kind
}
