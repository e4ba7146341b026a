package models

import (
	"errors"
	"fmt"
)

// ErrNoMatch means the search finished without finding any combination
// inside the widest tolerance band. Callers report it as a normal outcome,
// not a transport failure.
var ErrNoMatch = errors.New("no matching meal found")

// ValidationError marks a rejected request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DataSourceError wraps a failure to stat, open, or parse a dataset file.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("dataset %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }
