package service

import (
	"errors"
	"fmt"
)

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Project errors
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectLimitReached = errors.New("project limit reached for current plan")

	// Design errors
	ErrDesignNotFound = errors.New("design not found")

	// ErrQuotaExceeded means the account has used up its generation
	// allowance. The request consumed no quota and nothing was persisted.
	ErrQuotaExceeded = errors.New("ai generation limit reached")

	// ErrProviderTimeout means the generation provider did not answer within
	// the deadline. The request consumed no quota and may be resubmitted.
	ErrProviderTimeout = errors.New("generation provider timed out")
)

// ValidationError reports the first offending field of a malformed request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProviderError surfaces an upstream generation failure with the provider's
// status code for diagnostics.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("generation provider error (status %d): %s", e.StatusCode, e.Message)
}

// PersistenceError reports a storage failure after provider output was
// already produced. Quota is never charged when persistence fails.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
