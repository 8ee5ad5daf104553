package encoding

import "fmt"

// RLEWriter collapses runs of equal consecutive values into (run length, value)
// pairs written to the wrapped stream, count first.
//
// A run is committed only when a different value arrives or the writer is
// closed, so Close must be called once after the last Put. A run that reaches
// the maximum of T is committed and a new run of the same value starts, so run
// lengths never wrap on narrow types.
//
// A failed commit may leave half a pair in the wrapped stream. The writer is
// then closed: later Put and Close calls return ErrClosed and the wrapped
// stream must be discarded.
type RLEWriter[T Unsigned] struct {
	stream  StreamWriter[T]
	prev    T
	reps    T
	started bool
	closed  bool
}

var _ StreamWriter[uint64] = (*RLEWriter[uint64])(nil)

// NewRLEWriter wraps stream.
func NewRLEWriter[T Unsigned](stream StreamWriter[T]) *RLEWriter[T] {
	return &RLEWriter[T]{stream: stream}
}

// Put adds value to the current run, or commits the run and starts a new one.
func (w *RLEWriter[T]) Put(value T) error {
	if w.closed {
		return ErrClosed
	}

	if w.started && value == w.prev && w.reps < maxValue[T]() {
		w.reps++
		return nil
	}

	if err := w.commit(); err != nil {
		return err
	}
	w.prev = value
	w.reps = 1
	w.started = true

	return nil
}

// Size returns the size of the wrapped stream. The open run is not included.
func (w *RLEWriter[T]) Size() int {
	return w.stream.Size()
}

// Close commits the open run, if any, and closes the wrapped stream.
// A writer that never received a value writes nothing.
func (w *RLEWriter[T]) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	if err := w.commit(); err != nil {
		return err
	}

	return w.stream.Close()
}

func (w *RLEWriter[T]) commit() error {
	if w.reps == 0 {
		return nil
	}

	if err := w.stream.Put(w.reps); err != nil {
		w.closed = true
		return fmt.Errorf("commit run length: %w", err)
	}
	if err := w.stream.Put(w.prev); err != nil {
		w.closed = true
		return fmt.Errorf("commit run value: %w", err)
	}
	w.reps = 0

	return nil
}

// RLEReader expands the pairs written by RLEWriter back into single values.
type RLEReader[T Unsigned] struct {
	stream StreamReader[T]
	prev   T
	reps   T
}

var _ StreamReader[uint64] = (*RLEReader[uint64])(nil)

// NewRLEReader wraps stream.
func NewRLEReader[T Unsigned](stream StreamReader[T]) *RLEReader[T] {
	return &RLEReader[T]{stream: stream}
}

// Next returns the next value, reading a new (run length, value) pair once the
// current run is used up.
//
// ErrZeroLengthRun means the input is corrupt. The run length has already been
// consumed at that point, so the reader must not be used afterwards.
func (r *RLEReader[T]) Next() (T, error) {
	if r.reps == 0 {
		reps, err := r.stream.Next()
		if err != nil {
			return 0, err
		}
		if reps == 0 {
			return 0, ErrZeroLengthRun
		}

		value, err := r.stream.Next()
		if err != nil {
			return 0, fmt.Errorf("read run value: %w", err)
		}
		r.reps, r.prev = reps, value
	}
	r.reps--

	return r.prev, nil
}
