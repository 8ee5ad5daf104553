package encoding

import "fmt"

// DeltaWriter re-expresses a non-decreasing sequence as its first differences
// and forwards each difference to the wrapped stream.
//
// Monotonic data such as timestamps or sorted identifiers turns into small
// deltas, which a Base128Writer stores in one or two bytes. The first value is
// measured against zero. No framing bytes are added: one Put on the writer is
// exactly one Put on the wrapped stream.
type DeltaWriter[T Unsigned] struct {
	stream StreamWriter[T]
	prev   T
}

var _ StreamWriter[uint64] = (*DeltaWriter[uint64])(nil)

// NewDeltaWriter wraps stream.
func NewDeltaWriter[T Unsigned](stream StreamWriter[T]) *DeltaWriter[T] {
	return &DeltaWriter[T]{stream: stream}
}

// Put forwards value minus the previous value.
//
// A value smaller than its predecessor is rejected with ErrNonMonotonic; the
// wrapped stream and the writer state are left untouched, so the caller may
// continue with a valid value.
func (w *DeltaWriter[T]) Put(value T) error {
	if value < w.prev {
		return fmt.Errorf("%w: %d after %d", ErrNonMonotonic, value, w.prev)
	}

	if err := w.stream.Put(value - w.prev); err != nil {
		return err
	}
	w.prev = value

	return nil
}

// Size returns the size of the wrapped stream.
func (w *DeltaWriter[T]) Size() int {
	return w.stream.Size()
}

// Close closes the wrapped stream.
func (w *DeltaWriter[T]) Close() error {
	return w.stream.Close()
}

// DeltaReader reverses DeltaWriter.
type DeltaReader[T Unsigned] struct {
	stream StreamReader[T]
	prev   T
}

var _ StreamReader[uint64] = (*DeltaReader[uint64])(nil)

// NewDeltaReader wraps stream.
func NewDeltaReader[T Unsigned](stream StreamReader[T]) *DeltaReader[T] {
	return &DeltaReader[T]{stream: stream}
}

// Next reads one delta and returns the running sum.
//
// A sum that wraps the width of T cannot come from a DeltaWriter and is
// reported as ErrOverflow.
func (r *DeltaReader[T]) Next() (T, error) {
	delta, err := r.stream.Next()
	if err != nil {
		return 0, err
	}

	value := r.prev + delta
	if value < r.prev {
		return 0, fmt.Errorf("%w: delta %d after %d", ErrOverflow, delta, r.prev)
	}
	r.prev = value

	return value, nil
}
