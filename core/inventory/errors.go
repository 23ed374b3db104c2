package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable matches every SourceUnavailableError.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedRecord matches every MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrReloadInProgress is returned by non-blocking reload triggers while another reload runs.
	ErrReloadInProgress = errors.New("reload already in progress")
)

// SourceUnavailableError reports that an upstream origin could not be fetched:
// a transport error, a non-success response or a resource that could not be opened.
type SourceUnavailableError struct {
	Origin string
	Cause  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Origin, e.Cause)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Cause }

func (e *SourceUnavailableError) Is(target error) bool { return target == ErrSourceUnavailable }

// Unavailable wraps cause as a SourceUnavailableError for origin.
func Unavailable(origin string, cause error) error {
	return &SourceUnavailableError{Origin: origin, Cause: cause}
}

// MalformedRecordError describes one input record that could not be turned into a level.
// Line is 1-based for file feeds and zero when the record has no line position.
type MalformedRecordError struct {
	Origin string
	Line   int
	Reason string
	Cause  error
}

func (e *MalformedRecordError) Error() string {
	msg := "malformed record from " + e.Origin
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	msg += ": " + e.Reason
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error { return e.Cause }

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }
