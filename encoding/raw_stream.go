package encoding

import (
	"fmt"

	"github.com/arloliu/seqcodec/endian"
	"github.com/arloliu/seqcodec/internal/pool"
)

// RawWriter stores every value at its full width (1, 2, 4 or 8 bytes) in the
// configured byte order. It satisfies StreamWriter, so it can replace
// Base128Writer beneath the delta and RLE transforms when values are too large
// or too random for varints to pay off.
type RawWriter[T Unsigned] struct {
	engine endian.EndianEngine
	buf    *pool.ByteBuffer
	width  int
	count  int
}

var _ StreamWriter[uint64] = (*RawWriter[uint64])(nil)

// NewRawWriter creates a fixed-width writer backed by a pooled buffer.
func NewRawWriter[T Unsigned](engine endian.EndianEngine) *RawWriter[T] {
	return &RawWriter[T]{
		engine: engine,
		buf:    pool.GetStreamBuffer(),
		width:  bitWidth[T]() / 8,
	}
}

// Put appends value. It always succeeds.
func (w *RawWriter[T]) Put(value T) error {
	var tmp [8]byte
	switch w.width {
	case 1:
		tmp[0] = byte(value)
	case 2:
		w.engine.PutUint16(tmp[:], uint16(value))
	case 4:
		w.engine.PutUint32(tmp[:], uint32(value))
	default:
		w.engine.PutUint64(tmp[:], uint64(value))
	}
	w.buf.MustWrite(tmp[:w.width])
	w.count++

	return nil
}

// Size returns the number of encoded bytes.
func (w *RawWriter[T]) Size() int {
	return w.buf.Len()
}

// Len returns the number of values written.
func (w *RawWriter[T]) Len() int {
	return w.count
}

// Close is a no-op.
func (w *RawWriter[T]) Close() error {
	return nil
}

// Bytes returns the encoded bytes. The slice is valid until the next Put or Finish.
func (w *RawWriter[T]) Bytes() []byte {
	return w.buf.Bytes()
}

// Finish returns the internal buffer to the pool.
func (w *RawWriter[T]) Finish() {
	pool.PutStreamBuffer(w.buf)
	w.buf = nil
	w.count = 0
}

// RawReader reads values written by RawWriter with the same byte order.
type RawReader[T Unsigned] struct {
	engine endian.EndianEngine
	data   []byte
	width  int
	pos    int
}

var _ StreamReader[uint64] = (*RawReader[uint64])(nil)

// NewRawReader creates a fixed-width reader over data.
func NewRawReader[T Unsigned](data []byte, engine endian.EndianEngine) *RawReader[T] {
	return &RawReader[T]{
		engine: engine,
		data:   data,
		width:  bitWidth[T]() / 8,
	}
}

// Next returns the next value.
func (r *RawReader[T]) Next() (T, error) {
	remaining := len(r.data) - r.pos
	if remaining == 0 {
		return 0, ErrEndOfStream
	}
	if remaining < r.width {
		return 0, fmt.Errorf("%w: %d of %d bytes at offset %d", ErrTruncated, remaining, r.width, r.pos)
	}

	chunk := r.data[r.pos : r.pos+r.width]
	r.pos += r.width

	switch r.width {
	case 1:
		return T(chunk[0]), nil
	case 2:
		return T(r.engine.Uint16(chunk)), nil
	case 4:
		return T(r.engine.Uint32(chunk)), nil
	default:
		return T(r.engine.Uint64(chunk)), nil
	}
}

// Remaining returns the number of unread bytes.
func (r *RawReader[T]) Remaining() int {
	return len(r.data) - r.pos
}
