package fixtures

import "fmt"

// MissingFieldError means a fixture file lacks a column that every row must have.
type MissingFieldError struct {
	Source string
	Field  string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Source, e.Field)
}

// FixtureFormatError means a fixture file is readable but its contents are malformed.
type FixtureFormatError struct {
	Source string
	Line   int
	Reason string
	Err    error
}

func (e FixtureFormatError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e FixtureFormatError) Unwrap() error { return e.Err }

// IOError means a fixture file could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e IOError) Error() string {
	return fmt.Sprintf("could not read fixture file %s: %s", e.Path, e.Err)
}

func (e IOError) Unwrap() error { return e.Err }
