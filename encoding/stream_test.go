package encoding

import (
	"errors"
	"slices"
	"testing"

	"github.com/arloliu/seqcodec/endian"
	"github.com/stretchr/testify/require"
)

// === Composition Tests ===

func TestComposition_DeltaOverRLE(t *testing.T) {
	input := []uint64{100, 100, 100, 105, 105, 110}

	base := NewBase128Writer[uint64]()
	defer base.Finish()

	w := NewDeltaWriter[uint64](NewRLEWriter[uint64](base))
	require.NoError(t, WriteAll[uint64](w, input))
	require.NoError(t, w.Close())

	// Deltas 100,0,0,5,0,5 collapse into (1,100),(2,0),(1,5),(1,0),(1,5).
	require.Equal(t, []byte{0x01, 0x64, 0x02, 0x00, 0x01, 0x05, 0x01, 0x00, 0x01, 0x05}, base.Bytes())

	r := NewDeltaReader[uint64](NewRLEReader[uint64](NewBase128Reader[uint64](base.Bytes())))
	decoded, err := ReadN[uint64](r, len(input))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestComposition_RLEOverDeltaRejectsInterleavedCounts(t *testing.T) {
	base := NewBase128Writer[uint64]()
	defer base.Finish()

	// The delta layer receives run lengths interleaved with values
	// (3, 100, 2, ...), which is not non-decreasing.
	w := NewRLEWriter[uint64](NewDeltaWriter[uint64](base))
	err := WriteAll[uint64](w, []uint64{100, 100, 100, 105, 105, 110})
	require.ErrorIs(t, err, ErrNonMonotonic)
}

func TestComposition_RLEOverDelta_NonDecreasingPairs(t *testing.T) {
	// Runs whose lengths and values keep growing produce a non-decreasing
	// pair stream, which the inner delta layer accepts.
	input := []uint64{1, 2, 2, 3, 3, 3}

	base := NewBase128Writer[uint64]()
	defer base.Finish()

	w := NewRLEWriter[uint64](NewDeltaWriter[uint64](base))
	require.NoError(t, WriteAll[uint64](w, input))
	require.NoError(t, w.Close())

	r := NewRLEReader[uint64](NewDeltaReader[uint64](NewBase128Reader[uint64](base.Bytes())))
	decoded, err := ReadN[uint64](r, len(input))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestComposition_RegularTimestamps(t *testing.T) {
	input := make([]uint64, 10_000)
	for i := range input {
		input[i] = 1672531200000000 + uint64(i)*1_000_000
	}

	base := NewBase128Writer[uint64]()
	defer base.Finish()

	w := NewDeltaWriter[uint64](NewRLEWriter[uint64](base))
	require.NoError(t, WriteAll[uint64](w, input))
	require.NoError(t, w.Close())

	// One run for the first timestamp, one for the constant interval.
	require.Less(t, base.Size(), 16)

	decoded, err := ReadN[uint64](NewDeltaReader[uint64](NewRLEReader[uint64](NewBase128Reader[uint64](base.Bytes()))), len(input))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestComposition_OverRawStream(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	input := []uint16{10, 10, 10, 11, 500, 500}

	raw := NewRawWriter[uint16](engine)
	defer raw.Finish()

	w := NewRLEWriter[uint16](raw)
	require.NoError(t, WriteAll[uint16](w, input))
	require.NoError(t, w.Close())
	require.Equal(t, 3*2*2, raw.Size())

	decoded, err := ReadN[uint16](NewRLEReader[uint16](NewRawReader[uint16](raw.Bytes(), engine)), len(input))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestComposition_DeepNesting(t *testing.T) {
	input := []uint32{3, 3, 3, 3, 9, 9, 12}

	rec := newRecordingWriter[uint32]()
	w := NewDeltaWriter[uint32](NewRLEWriter[uint32](NewRLEWriter[uint32](rec)))
	require.NoError(t, WriteAll[uint32](w, input))
	require.NoError(t, w.Close())
	require.Equal(t, 1, rec.closes, "Close must propagate through every layer")

	r := NewDeltaReader[uint32](NewRLEReader[uint32](NewRLEReader[uint32](newSliceReader(rec.values))))
	decoded, err := ReadN[uint32](r, len(input))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

// === Helper Tests ===

func TestWriteAll_ReportsIndex(t *testing.T) {
	rec := newRecordingWriter[uint64]()
	err := WriteAll[uint64](NewDeltaWriter[uint64](rec), []uint64{1, 2, 0, 3})

	require.ErrorIs(t, err, ErrNonMonotonic)
	require.ErrorContains(t, err, "put value 2")
	require.Equal(t, []uint64{1, 1}, rec.values)
}

func TestReadN_ShortStream(t *testing.T) {
	values, err := ReadN[uint64](newSliceReader([]uint64{1, 2}), 3)

	require.ErrorIs(t, err, ErrEndOfStream)
	require.Equal(t, []uint64{1, 2}, values)
}

func TestReadN_NonPositive(t *testing.T) {
	values, err := ReadN[uint64](newSliceReader[uint64](nil), 0)

	require.NoError(t, err)
	require.Empty(t, values)
}

func TestAll(t *testing.T) {
	r := NewRLEReader[uint64](NewBase128Reader[uint64]([]byte{0x03, 0x07, 0x01, 0x08}))
	require.Equal(t, []uint64{7, 7, 7, 8}, slices.Collect(All[uint64](r, 4)))

	short := newSliceReader([]uint64{1})
	require.Equal(t, []uint64{1}, slices.Collect(All[uint64](short, 5)))

	partial := newSliceReader([]uint64{1, 2, 3})
	for v := range All[uint64](partial, 3) {
		if v == 2 {
			break
		}
	}
	next, err := partial.Next()
	require.NoError(t, err)
	require.Equal(t, uint64(3), next, "breaking out of the iterator must not consume extra values")
}

// === Test doubles ===

var errStubFull = errors.New("stub stream full")

// recordingWriter is a StreamWriter that keeps the values it receives.
type recordingWriter[T Unsigned] struct {
	values []T
	failAt int // index of the Put call that fails, -1 for never
	puts   int
	closes int
}

func newRecordingWriter[T Unsigned]() *recordingWriter[T] {
	return &recordingWriter[T]{failAt: -1}
}

func (w *recordingWriter[T]) Put(value T) error {
	idx := w.puts
	w.puts++
	if idx == w.failAt {
		return errStubFull
	}
	w.values = append(w.values, value)

	return nil
}

func (w *recordingWriter[T]) Size() int {
	return len(w.values)
}

func (w *recordingWriter[T]) Close() error {
	w.closes++
	return nil
}

// sliceReader is a StreamReader over an in-memory slice.
type sliceReader[T Unsigned] struct {
	values []T
	pos    int
}

func newSliceReader[T Unsigned](values []T) *sliceReader[T] {
	return &sliceReader[T]{values: values}
}

func (r *sliceReader[T]) Next() (T, error) {
	if r.pos >= len(r.values) {
		return 0, ErrEndOfStream
	}
	v := r.values[r.pos]
	r.pos++

	return v, nil
}
