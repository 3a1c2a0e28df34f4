package vectorengine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an argument is invalid (e.g. a
	// non-positive length, an index out of range, mismatched vector lengths).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownStat is returned when a statistic name is not recognized.
	ErrUnknownStat = errors.New("unknown statistic")
)

// ErrInvalidLength indicates a vector length below one.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: %d (must be >= 1)", e.Length)
}

func (e *ErrInvalidLength) Unwrap() error { return ErrInvalidArgument }

// ErrLengthMismatch indicates an elementwise operation on vectors of
// different lengths.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrIndexOutOfRange indicates an element index outside [0, Length).
//
// It matches ErrInvalidArgument via errors.Is.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Length)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrInvalidArgument }

// ErrSequenceExhausted indicates a number sequence with fewer than Length
// members between Start and math.MaxInt64.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrSequenceExhausted struct {
	Kind   string
	Start  int64
	Length int
	Found  int
}

func (e *ErrSequenceExhausted) Error() string {
	return fmt.Sprintf("%s sequence exhausted: %d of %d members from %d", e.Kind, e.Found, e.Length, e.Start)
}

func (e *ErrSequenceExhausted) Unwrap() error { return ErrInvalidArgument }
