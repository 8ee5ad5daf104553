package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// === Base128Writer Tests ===

func TestBase128Writer_NewWriter(t *testing.T) {
	w := NewBase128Writer[uint64]()
	defer w.Finish()

	require.Equal(t, 0, w.Len())
	require.Equal(t, 0, w.Size())
	require.Empty(t, w.Bytes())
}

func TestBase128Writer_Put(t *testing.T) {
	w := NewBase128Writer[uint32]()
	defer w.Finish()

	require.NoError(t, w.Put(1))
	require.NoError(t, w.Put(300))
	require.NoError(t, w.Put(0))

	require.Equal(t, 3, w.Len())
	require.Equal(t, 4, w.Size())
	require.Equal(t, []byte{0x01, 0xac, 0x02, 0x00}, w.Bytes())

	require.NoError(t, w.Close())
	require.Equal(t, 4, w.Size(), "Close must not add bytes")
}

func TestBase128Writer_SizeTracksBuffer(t *testing.T) {
	w := NewBase128Writer[uint64]()
	defer w.Finish()

	expected := 0
	for _, v := range []uint64{0, 127, 128, 16384, math.MaxUint64} {
		require.NoError(t, w.Put(v))
		expected += NewBase128(v).Len()
		require.Equal(t, expected, w.Size())
	}
}

// === Base128Reader Tests ===

func TestBase128Reader_Next(t *testing.T) {
	r := NewBase128Reader[uint32]([]byte{0x01, 0xac, 0x02, 0x00})

	values, err := ReadN[uint32](r, 3)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 300, 0}, values)
	require.Equal(t, 4, r.Offset())
	require.Equal(t, 0, r.Remaining())

	_, err = r.Next()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestBase128Reader_EmptyData(t *testing.T) {
	r := NewBase128Reader[uint64](nil)

	_, err := r.Next()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestBase128Reader_TruncatedValue(t *testing.T) {
	r := NewBase128Reader[uint64]([]byte{0x05, 0x80})

	v, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, uint64(5), v)

	_, err = r.Next()
	require.ErrorIs(t, err, ErrTruncated)
	require.Equal(t, 1, r.Offset(), "failed read must not move the cursor")
}

func TestBase128Reader_Range(t *testing.T) {
	data := []byte{0xff, 0x01, 0xac, 0x02, 0x03, 0xff}

	r, err := NewBase128ReaderRange[uint32](data, 1, 5)
	require.NoError(t, err)
	require.Equal(t, 4, r.Remaining())

	values, err := ReadN[uint32](r, 3)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 300, 3}, values)

	_, err = r.Next()
	require.ErrorIs(t, err, ErrEndOfStream, "the end bound must stop the reader before trailing bytes")
}

func TestBase128Reader_RangeCutsValue(t *testing.T) {
	data := []byte{0xac, 0x02}

	r, err := NewBase128ReaderRange[uint32](data, 0, 1)
	require.NoError(t, err)

	_, err = r.Next()
	require.ErrorIs(t, err, ErrTruncated)
}

func TestBase128Reader_InvalidRange(t *testing.T) {
	data := make([]byte, 4)

	for _, bounds := range [][2]int{{-1, 2}, {3, 2}, {0, 5}} {
		_, err := NewBase128ReaderRange[uint64](data, bounds[0], bounds[1])
		require.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestBase128Stream_RoundTrip(t *testing.T) {
	input := []uint16{0, 1, 127, 128, 255, 256, 16383, 16384, math.MaxUint16}

	w := NewBase128Writer[uint16]()
	defer w.Finish()

	require.NoError(t, WriteAll[uint16](w, input))
	require.NoError(t, w.Close())

	decoded, err := ReadN[uint16](NewBase128Reader[uint16](w.Bytes()), len(input))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}
