package encoding

import "errors"

var (
	// ErrCapacityExhausted is returned by bounded encoders when the destination
	// is too small for the complete encoding. No bytes are written.
	ErrCapacityExhausted = errors.New("encoding: destination capacity exhausted")

	// ErrTruncated is returned when the input ends in the middle of an encoded value.
	ErrTruncated = errors.New("encoding: truncated value")

	// ErrOverflow is returned when a decoded value does not fit the value type.
	ErrOverflow = errors.New("encoding: value overflows type width")

	// ErrEndOfStream is returned by readers asked for a value past the end bound.
	ErrEndOfStream = errors.New("encoding: read past end of stream")

	// ErrNonMonotonic is returned by DeltaWriter when a value is smaller than its predecessor.
	ErrNonMonotonic = errors.New("encoding: delta input is not non-decreasing")

	// ErrZeroLengthRun is returned by RLEReader when the stream holds a run of length 0.
	ErrZeroLengthRun = errors.New("encoding: zero-length run")

	// ErrClosed is returned when a writer is used after Close.
	ErrClosed = errors.New("encoding: stream writer closed")

	// ErrInvalidRange is returned when reader bounds fall outside the data.
	ErrInvalidRange = errors.New("encoding: invalid stream range")
)
