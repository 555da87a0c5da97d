package internal

import (
	"errors"
	"fmt"
)

// ErrMissingCredential means neither a user override nor a process-wide
// default API key is configured. User-actionable, never retried.
var ErrMissingCredential = errors.New("no API key found: set one with 'raporgen key set <key>' or export the provider environment variable")

// ErrEmptyOutline means the backend answered but produced no usable outline.
// Kept distinct from BackendError so the user sees which of the two happened.
var ErrEmptyOutline = errors.New("the AI could not produce a valid outline for this topic")

// ErrReportNotFound means no history entry matched the requested id
var ErrReportNotFound = errors.New("report not found")

// ErrRunInFlight means Run was called while another run owns the pipeline
var ErrRunInFlight = errors.New("a report generation run is already in flight")

// BackendError represents a failed generative-backend call
type BackendError struct {
	Op    string // "outline", "content", "image"
	Model string
	Err   error
}

func (e *BackendError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("backend error: %s (%s): %v", e.Op, e.Model, e.Err)
	}
	return fmt.Sprintf("backend error: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// StoreError represents errors accessing the durable key-value store
type StoreError struct {
	Key string
	Op  string // "open", "get", "set", "delete"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
