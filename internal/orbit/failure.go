package orbit

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a search call produced no result page.
type FailureKind int

const (
	// FailureNetwork covers transport-level errors: the request never
	// produced an HTTP response.
	FailureNetwork FailureKind = iota
	// FailureStatus means the server answered with a non-success status.
	FailureStatus
	// FailureDecode means a success response carried a body that does not
	// match the QueryResult shape.
	FailureDecode
)

// String returns the failure kind name for log lines.
func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Failure is the value form of a failed search call. Every error returned by
// Client.Search is a *Failure; nothing panics across the client boundary.
type Failure struct {
	Kind       FailureKind
	StatusCode int // set for FailureStatus
	Err        error
}

// Error implements error.
func (f *Failure) Error() string {
	switch f.Kind {
	case FailureStatus:
		return fmt.Sprintf("search: server returned status %d", f.StatusCode)
	case FailureDecode:
		return fmt.Sprintf("search: decode response: %v", f.Err)
	default:
		return fmt.Sprintf("search: %v", f.Err)
	}
}

// Unwrap exposes the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Err
}

// AsFailure extracts the *Failure from an error, classifying anything else as
// a network failure.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: FailureNetwork, Err: err}
}
