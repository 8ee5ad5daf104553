package encoding

import (
	"fmt"
	"iter"
	"unsafe"
)

// Unsigned is the set of value types accepted by every stream in this package.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// StreamWriter is the write half of the stream contract shared by the base
// adapters and the transforms.
//
// Transforms accept any StreamWriter, so they can be stacked on a base adapter,
// on each other, or on a caller-provided implementation.
type StreamWriter[T Unsigned] interface {
	// Put appends one logical value.
	Put(value T) error

	// Size returns the number of bytes committed to the underlying buffer.
	// Values still held by a transform (such as an open RLE run) are not counted.
	Size() int

	// Close flushes any pending state. It must be called exactly once after the
	// last Put, otherwise buffered values may be lost.
	Close() error
}

// StreamReader is the read half of the stream contract.
//
// A reader stack must mirror the writer stack that produced the bytes; the
// encoded data carries no framing that could detect a mismatch.
type StreamReader[T Unsigned] interface {
	// Next returns the next logical value.
	Next() (T, error)
}

// WriteAll puts every value into w in order and stops at the first failure.
// It does not close w.
func WriteAll[T Unsigned](w StreamWriter[T], values []T) error {
	for i, v := range values {
		if err := w.Put(v); err != nil {
			return fmt.Errorf("put value %d: %w", i, err)
		}
	}

	return nil
}

// ReadN reads exactly n values from r.
func ReadN[T Unsigned](r StreamReader[T], n int) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}

	values := make([]T, 0, n)
	for i := range n {
		v, err := r.Next()
		if err != nil {
			return values, fmt.Errorf("read value %d of %d: %w", i, n, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// All returns an iterator over at most n values from r.
//
// Iteration stops early when r returns an error; use ReadN when the caller
// needs to observe that error.
func All[T Unsigned](r StreamReader[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range n {
			v, err := r.Next()
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// bitWidth returns the width of T in bits.
func bitWidth[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// maxValue returns the largest value representable by T.
func maxValue[T Unsigned]() T {
	return ^T(0)
}
