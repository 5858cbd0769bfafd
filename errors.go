package reporter

import (
	"errors"
	"fmt"
)

// RuntimeError represents an operational error that should lead to exit code 2
// Examples include configuration errors, an unreadable tracking document, etc.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NewRuntimeError creates a new RuntimeError
func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError checks if the error is or wraps a RuntimeError
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

// NoGroupsError signals that the tracking document yielded zero groups
// (exit code 1). This is the only per-run condition that fails the
// whole report; everything that goes wrong inside a single group
// degrades to a 0/0 line instead.
type NoGroupsError struct {
	Document string
}

func (e *NoGroupsError) Error() string {
	return fmt.Sprintf("no groups found to run in %s", e.Document)
}

// NewNoGroupsError creates a new NoGroupsError
func NewNoGroupsError(document string) *NoGroupsError {
	return &NoGroupsError{Document: document}
}

// IsNoGroupsError checks if the error is or wraps a NoGroupsError
func IsNoGroupsError(err error) bool {
	var noGroupsErr *NoGroupsError
	return err != nil && errors.As(err, &noGroupsErr)
}
