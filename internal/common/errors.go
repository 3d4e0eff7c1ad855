// Package common provides shared utilities and types used across the engine.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNoScannableInput indicates the input set was empty or every file
	// failed to decode. This is the only batch-level fatal condition.
	ErrNoScannableInput = errors.New("no scannable input")

	// ErrMissingConfig indicates required configuration is absent.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrInvalidConfig indicates configuration that failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CatalogError reports a malformed pattern registry. It is fatal: a catalog
// that fails validation aborts startup rather than scanning with a partial
// pattern set.
type CatalogError struct {
	PatternID string
	Reason    string
}

func (e *CatalogError) Error() string {
	if e.PatternID == "" {
		return fmt.Sprintf("catalog: %s", e.Reason)
	}
	return fmt.Sprintf("catalog: pattern %q: %s", e.PatternID, e.Reason)
}

// NewCatalogError creates a CatalogError for the given pattern.
func NewCatalogError(patternID, format string, args ...any) error {
	return &CatalogError{PatternID: patternID, Reason: fmt.Sprintf(format, args...)}
}

// DecodeError reports a single file that could not be read or was not valid
// UTF-8 text. It is recovered per-file: the batch continues and the file is
// recorded in the report's errors list.
type DecodeError struct {
	Err  error
	File string
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("decode %s: not valid UTF-8 text", e.File)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}
