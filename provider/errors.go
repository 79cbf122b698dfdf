package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider operations.
var (
	// ErrUnknownProvider indicates the requested provider is not registered.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrCredentialsNotFound indicates the API credential is missing.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrUnauthorized indicates the provider rejected the credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the request was rate limited or over quota.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidRequest indicates the provider rejected the request as malformed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnavailable indicates the provider service is unavailable.
	ErrUnavailable = errors.New("service unavailable")

	// ErrEmptyResponse indicates the provider answered without any text.
	ErrEmptyResponse = errors.New("empty response")
)

// Error wraps provider errors with context.
type Error struct {
	Provider string // Provider name ("gemini", "mock")
	Op       string // Operation that failed ("generate", "connect")
	Err      error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new provider error.
func NewError(provider, op string, err error) *Error {
	return &Error{
		Provider: provider,
		Op:       op,
		Err:      err,
	}
}

// IsAuthError checks if an error is authentication-related.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrCredentialsNotFound) ||
		errors.Is(err, ErrUnauthorized)
}
