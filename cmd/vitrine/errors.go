package main

import (
	"fmt"
)

const (
	exitFailure    = 1
	exitInvalid    = 2
	exitNoTerminal = 3
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion, code: exitFailure}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
	code       int
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// withCode sets the exit code the process ends with.
func withCode(err error, code int) error {
	if cmdErr, ok := err.(*commandError); ok {
		cmdErr.code = code
	}
	return err
}
