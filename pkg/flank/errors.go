package flank

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is.
var (
	ErrConfig   = errors.New("invalid flank configuration")
	ErrNotFound = errors.New("flank not found")
	ErrOrder    = errors.New("C-terminal flank does not follow N-terminal flank")
	ErrSpan     = errors.New("empty domain")
)

// Terminus says which flank.
type Terminus byte

const (
	NTerm Terminus = 'N'
	CTerm Terminus = 'C'
)

func (t Terminus) String() string {
	if t == NTerm {
		return "N-terminal"
	}
	return "C-terminal"
}

// ConfigError means the run cannot start. It is not per sequence.
type ConfigError struct {
	Issues []string
}

func (e *ConfigError) Error() string {
	return ErrConfig.Error() + ": " + strings.Join(e.Issues, "; ")
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// NotFoundError means one of the flanks does not occur in the sequence.
type NotFoundError struct {
	Which Terminus
	Flank string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s flank %q not found", e.Which, e.Flank)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// OrderError means the C-terminal flank starts at or before the
// N-terminal flank.
type OrderError struct {
	NPos, CPos int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s (N-terminal at %d, C-terminal at %d)", ErrOrder, e.NPos, e.CPos)
}

func (e *OrderError) Unwrap() error { return ErrOrder }

// SpanError means the cut positions would give an empty or inverted
// slice.
type SpanError struct {
	Start, End int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("%s: start %d is not before end %d", ErrSpan, e.Start, e.End)
}

func (e *SpanError) Unwrap() error { return ErrSpan }

// RecordError attaches the sequence identifier to a failure.
type RecordError struct {
	ID  string
	Err error
}

func (e *RecordError) Error() string { return e.ID + ": " + e.Err.Error() }

func (e *RecordError) Unwrap() error { return e.Err }
