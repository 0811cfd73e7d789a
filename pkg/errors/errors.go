package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadError reports that a media item could not be loaded.
type LoadError struct {
	Index  int
	Source string
	Err    error
}

// NewLoadError constructs a LoadError for the item at index.
func NewLoadError(index int, source string, err error) error {
	return &LoadError{Index: index, Source: source, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("load error on item %d (%s): %v", e.Index, e.Source, e.Err)
	}
	return fmt.Sprintf("load error on item %d: %v", e.Index, e.Err)
}

// Unwrap exposes the root error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindMismatchError indicates a media file whose detected content does not
// match the variant declared for it.
type KindMismatchError struct {
	Declared string
	Detected string
}

func (e *KindMismatchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("declared %s but content is %s", e.Declared, e.Detected)
}
