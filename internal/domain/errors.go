package domain

import (
	"errors"
	"fmt"
)

// Precondition errors reject an invocation before any network call is
// made. They are fatal to the single invocation and must never be
// conflated with a legitimate score.
var (
	// ErrNoContent indicates that the content list was empty. LM_SCORE
	// requires at least one content argument before the question.
	ErrNoContent = errors.New("at least one content argument is required")

	// ErrEmptyQuestion indicates that the trailing question argument
	// was empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrInvalidConfiguration indicates that scoring configuration is
	// invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// PreconditionError wraps an argument-validation failure with the name
// of the violated argument. It is raised before the prompt is built and
// before any inference call is attempted.
type PreconditionError struct {
	// Argument names the offending parameter ("content", "question").
	Argument string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface for PreconditionError.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violated for %s: %v", e.Argument, e.Err)
}

// Unwrap returns the underlying sentinel, supporting errors.Is checks.
func (e *PreconditionError) Unwrap() error { return e.Err }

// NewPreconditionError creates a PreconditionError for the given argument.
func NewPreconditionError(argument string, err error) *PreconditionError {
	return &PreconditionError{Argument: argument, Err: err}
}
