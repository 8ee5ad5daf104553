package encoding

// maxBase128Len64 is the longest base-128 encoding of any supported width.
const maxBase128Len64 = 10

// MaxBase128Len returns the worst-case encoded length of a value of type T,
// ceil(bits/7): 2 for uint8, 3 for uint16, 5 for uint32 and 10 for uint64.
func MaxBase128Len[T Unsigned]() int {
	return (bitWidth[T]() + 6) / 7
}

// Base128 holds a single unsigned integer together with its base-128 codec.
//
// Each encoded byte carries 7 payload bits, least significant group first,
// and sets the high bit when more bytes follow. Zero encodes as one byte.
type Base128[T Unsigned] struct {
	value T
}

// NewBase128 wraps value for encoding.
func NewBase128[T Unsigned](value T) Base128[T] {
	return Base128[T]{value: value}
}

// Value returns the wrapped integer.
func (b Base128[T]) Value() T {
	return b.value
}

// Len returns the number of bytes needed to encode the value.
func (b Base128[T]) Len() int {
	n := 1
	for v := b.value; v >= 0x80; v >>= 7 {
		n++
	}

	return n
}

// Append appends the encoding to dst and returns the extended slice.
func (b Base128[T]) Append(dst []byte) []byte {
	return AppendBase128(dst, b.value)
}

// Put writes the encoding into the bounded buffer dst.
// See PutBase128.
func (b Base128[T]) Put(dst []byte) (int, error) {
	return PutBase128(dst, b.value)
}

// Decode reads one encoded value from src into b and returns the number of
// bytes consumed. On error b is left unchanged.
func (b *Base128[T]) Decode(src []byte) (int, error) {
	v, n, err := DecodeBase128[T](src)
	if err != nil {
		return 0, err
	}
	b.value = v

	return n, nil
}

// AppendBase128 appends the base-128 encoding of v to dst. It cannot fail.
func AppendBase128[T Unsigned](dst []byte, v T) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// PutBase128 encodes v into the bounded buffer dst and returns the number of
// bytes written.
//
// The value is encoded into a local array first and copied out only when the
// whole encoding fits, so on ErrCapacityExhausted it returns 0 and dst is
// left exactly as it was.
func PutBase128[T Unsigned](dst []byte, v T) (int, error) {
	var tmp [maxBase128Len64]byte

	n := 0
	for v >= 0x80 {
		tmp[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	tmp[n] = byte(v)
	n++

	if n > len(dst) {
		return 0, ErrCapacityExhausted
	}
	copy(dst, tmp[:n])

	return n, nil
}

// DecodeBase128 decodes one value from the front of src and returns it with
// the number of bytes consumed.
//
// It returns ErrTruncated when src ends before a byte with the high bit clear,
// and ErrOverflow when the encoded groups hold bits beyond the width of T.
func DecodeBase128[T Unsigned](src []byte) (T, int, error) {
	width := bitWidth[T]()

	var acc T
	shift := 0
	for i, b := range src {
		group := b & 0x7f
		if shift >= width {
			return 0, 0, ErrOverflow
		}
		if remaining := width - shift; remaining < 7 && group>>remaining != 0 {
			return 0, 0, ErrOverflow
		}

		acc |= T(group) << shift
		if b&0x80 == 0 {
			return acc, i + 1, nil
		}
		shift += 7
	}

	return 0, 0, ErrTruncated
}
