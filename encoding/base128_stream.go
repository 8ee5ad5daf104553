package encoding

import (
	"fmt"

	"github.com/arloliu/seqcodec/internal/pool"
)

// Base128Writer is the base stream adapter on the write side: every Put appends
// the base-128 encoding of the value to a growable buffer.
//
// The buffer comes from a shared pool. Call Finish once the encoded bytes are
// no longer needed to hand it back.
type Base128Writer[T Unsigned] struct {
	buf   *pool.ByteBuffer
	count int
}

var _ StreamWriter[uint64] = (*Base128Writer[uint64])(nil)

// NewBase128Writer creates a writer backed by a pooled buffer.
func NewBase128Writer[T Unsigned]() *Base128Writer[T] {
	return &Base128Writer[T]{
		buf: pool.GetStreamBuffer(),
	}
}

// Put appends value to the buffer. It always succeeds.
func (w *Base128Writer[T]) Put(value T) error {
	var tmp [maxBase128Len64]byte
	n, _ := PutBase128(tmp[:], value)
	w.buf.MustWrite(tmp[:n])
	w.count++

	return nil
}

// Size returns the number of encoded bytes.
func (w *Base128Writer[T]) Size() int {
	return w.buf.Len()
}

// Len returns the number of values written.
func (w *Base128Writer[T]) Len() int {
	return w.count
}

// Close is a no-op: the adapter holds no pending state.
func (w *Base128Writer[T]) Close() error {
	return nil
}

// Bytes returns the encoded bytes.
//
// The returned slice references the internal buffer and is valid until the
// next Put or Finish. The caller must not modify it.
func (w *Base128Writer[T]) Bytes() []byte {
	return w.buf.Bytes()
}

// Finish returns the internal buffer to the pool. The writer must not be used
// afterwards.
func (w *Base128Writer[T]) Finish() {
	pool.PutStreamBuffer(w.buf)
	w.buf = nil
	w.count = 0
}

// Base128Reader is the base stream adapter on the read side. It decodes values
// from an immutable byte range in the order they were written.
type Base128Reader[T Unsigned] struct {
	data []byte
	pos  int
	end  int
}

var _ StreamReader[uint64] = (*Base128Reader[uint64])(nil)

// NewBase128Reader creates a reader over all of data.
func NewBase128Reader[T Unsigned](data []byte) *Base128Reader[T] {
	return &Base128Reader[T]{
		data: data,
		end:  len(data),
	}
}

// NewBase128ReaderRange creates a reader over data[start:end].
func NewBase128ReaderRange[T Unsigned](data []byte, start, end int) (*Base128Reader[T], error) {
	if start < 0 || end < start || end > len(data) {
		return nil, fmt.Errorf("%w: [%d:%d] of %d bytes", ErrInvalidRange, start, end, len(data))
	}

	return &Base128Reader[T]{
		data: data,
		pos:  start,
		end:  end,
	}, nil
}

// Next decodes the next value.
//
// It returns ErrEndOfStream once the end bound is reached; a varint cut off by
// the end bound yields ErrTruncated and the cursor does not move.
func (r *Base128Reader[T]) Next() (T, error) {
	if r.pos >= r.end {
		return 0, ErrEndOfStream
	}

	v, n, err := DecodeBase128[T](r.data[r.pos:r.end])
	if err != nil {
		return 0, fmt.Errorf("decode varint at offset %d: %w", r.pos, err)
	}
	r.pos += n

	return v, nil
}

// Offset returns the position of the read cursor within the data.
func (r *Base128Reader[T]) Offset() int {
	return r.pos
}

// Remaining returns the number of undecoded bytes before the end bound.
func (r *Base128Reader[T]) Remaining() int {
	return r.end - r.pos
}
