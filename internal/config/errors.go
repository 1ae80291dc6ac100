package config

import (
	"fmt"
)

// ParseError is returned when the document is not well-formed YAML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse config: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a required key is absent or null.
// Field is the bare key; Path names the enclosing block, e.g. "automate[1]".
type MissingFieldError struct {
	Field string
	Path  string
}

func (e *MissingFieldError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("missing required field %q in %s", e.Field, e.Path)
}

// TypeMismatchError is returned when a key is present but holds the wrong
// kind of value.
type TypeMismatchError struct {
	Field    string
	Path     string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	field := e.Field
	if e.Path != "" {
		field = e.Path + "." + e.Field
	}
	return fmt.Sprintf("field %q: expected %s, got %s", field, e.Expected, e.Got)
}
