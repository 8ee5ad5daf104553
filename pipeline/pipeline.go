package pipeline

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/seqcodec/compress"
	"github.com/arloliu/seqcodec/encoding"
	"github.com/arloliu/seqcodec/format"
)

// baseWriter is the bottom stage of a writer stack: a stream adapter that owns
// the pooled output buffer.
type baseWriter[T encoding.Unsigned] interface {
	encoding.StreamWriter[T]
	Bytes() []byte
	Finish()
}

// Describe returns the stage names of an encoding type in writer order, from
// the stage receiving values down to the base adapter.
func Describe(encodingType format.EncodingType) []string {
	switch encodingType {
	case format.TypeRaw:
		return []string{"raw"}
	case format.TypeVarint:
		return []string{"varint"}
	case format.TypeDelta:
		return []string{"delta", "varint"}
	case format.TypeRLE:
		return []string{"rle", "varint"}
	case format.TypeDeltaRLE:
		return []string{"delta", "rle", "varint"}
	default:
		return nil
	}
}

func newWriterStack[T encoding.Unsigned](cfg *config) (baseWriter[T], encoding.StreamWriter[T]) {
	var base baseWriter[T]
	if cfg.encoding == format.TypeRaw {
		base = encoding.NewRawWriter[T](cfg.engine)
	} else {
		base = encoding.NewBase128Writer[T]()
	}

	switch cfg.encoding {
	case format.TypeDelta:
		return base, encoding.NewDeltaWriter[T](base)
	case format.TypeRLE:
		return base, encoding.NewRLEWriter[T](base)
	case format.TypeDeltaRLE:
		return base, encoding.NewDeltaWriter[T](encoding.NewRLEWriter[T](base))
	default:
		return base, base
	}
}

func newReaderStack[T encoding.Unsigned](cfg *config, data []byte) encoding.StreamReader[T] {
	if cfg.encoding == format.TypeRaw {
		return encoding.NewRawReader[T](data, cfg.engine)
	}

	base := encoding.NewBase128Reader[T](data)
	switch cfg.encoding {
	case format.TypeDelta:
		return encoding.NewDeltaReader[T](base)
	case format.TypeRLE:
		return encoding.NewRLEReader[T](base)
	case format.TypeDeltaRLE:
		return encoding.NewDeltaReader[T](encoding.NewRLEReader[T](base))
	default:
		return base
	}
}

// Writer encodes one integer column through the configured codec stack and
// compresses the result.
//
// Writer satisfies encoding.StreamWriter, so it can itself be wrapped by
// further transforms. It is not safe for concurrent use.
type Writer[T encoding.Unsigned] struct {
	cfg    *config
	base   baseWriter[T]
	stream encoding.StreamWriter[T]
	codec  compress.Codec
	stats  compress.CompressionStats
	count  int
	closed bool
}

var _ encoding.StreamWriter[uint64] = (*Writer[uint64])(nil)

// NewWriter creates a Writer. Without options it writes plain varints with no
// compression.
func NewWriter[T encoding.Unsigned](opts ...Option) (*Writer[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, cfg.label())
	if err != nil {
		return nil, err
	}

	base, stream := newWriterStack[T](cfg)

	return &Writer[T]{
		cfg:    cfg,
		base:   base,
		stream: stream,
		codec:  codec,
	}, nil
}

// Put encodes one value.
func (w *Writer[T]) Put(value T) error {
	if w.closed {
		return encoding.ErrClosed
	}

	if err := w.stream.Put(value); err != nil {
		return fmt.Errorf("%s value %d: %w", w.cfg.label(), w.count, err)
	}
	w.count++

	return nil
}

// Size returns the number of encoded bytes before compression.
func (w *Writer[T]) Size() int {
	return w.base.Size()
}

// Len returns the number of values accepted by Put.
func (w *Writer[T]) Len() int {
	return w.count
}

// Close flushes the codec stack. Payload calls it when needed.
func (w *Writer[T]) Close() error {
	if w.closed {
		return encoding.ErrClosed
	}
	w.closed = true

	return w.stream.Close()
}

// Payload closes the writer if it is still open and returns the compressed
// payload.
//
// With format.CompressionNone the returned slice references the internal
// buffer and is only valid until Finish.
func (w *Writer[T]) Payload() ([]byte, error) {
	if !w.closed {
		if err := w.Close(); err != nil {
			return nil, err
		}
	}

	encoded := w.base.Bytes()
	compressed, err := w.codec.Compress(encoded)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", w.cfg.label(), err)
	}

	w.stats = compress.CompressionStats{
		Algorithm:      w.cfg.compression,
		OriginalSize:   int64(len(encoded)),
		CompressedSize: int64(len(compressed)),
	}

	return compressed, nil
}

// Stats reports the sizes of the last Payload call.
func (w *Writer[T]) Stats() compress.CompressionStats {
	return w.stats
}

// Column returns the descriptor matching this writer's configuration.
func (w *Writer[T]) Column() Column {
	return w.cfg.describe()
}

// Finish returns the internal buffer to the pool. The writer must not be used
// afterwards.
func (w *Writer[T]) Finish() {
	w.base.Finish()
}

// Reader decodes a payload produced by a Writer with the same options.
type Reader[T encoding.Unsigned] struct {
	cfg    *config
	stream encoding.StreamReader[T]
	read   int
	err    error
}

var _ encoding.StreamReader[uint64] = (*Reader[uint64])(nil)

// NewReader decompresses payload and builds the mirrored reader stack.
func NewReader[T encoding.Unsigned](payload []byte, opts ...Option) (*Reader[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, cfg.label())
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", cfg.label(), err)
	}

	return &Reader[T]{
		cfg:    cfg,
		stream: newReaderStack[T](cfg, data),
	}, nil
}

// Next decodes the next value.
func (r *Reader[T]) Next() (T, error) {
	v, err := r.stream.Next()
	if err != nil {
		return 0, fmt.Errorf("%s value %d: %w", r.cfg.label(), r.read, err)
	}
	r.read++

	return v, nil
}

// All returns an iterator over at most n values. It stops at the first decode
// error, which is then available from Err until the next iteration starts.
func (r *Reader[T]) All(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		r.err = nil
		for range n {
			v, err := r.Next()
			if err != nil {
				r.err = err
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the error that stopped the last All iteration, if any.
func (r *Reader[T]) Err() error {
	return r.err
}

// Column returns the descriptor matching this reader's configuration.
func (r *Reader[T]) Column() Column {
	return r.cfg.describe()
}

// Encode runs values through a new Writer and returns a payload owned by the
// caller.
func Encode[T encoding.Unsigned](values []T, opts ...Option) ([]byte, error) {
	w, err := NewWriter[T](opts...)
	if err != nil {
		return nil, err
	}
	defer w.Finish()

	if err := encoding.WriteAll[T](w, values); err != nil {
		return nil, err
	}

	payload, err := w.Payload()
	if err != nil {
		return nil, err
	}

	if w.cfg.compression == format.CompressionNone {
		return slices.Clone(payload), nil
	}

	return payload, nil
}

// Decode reads exactly count values from payload.
func Decode[T encoding.Unsigned](payload []byte, count int, opts ...Option) ([]T, error) {
	r, err := NewReader[T](payload, opts...)
	if err != nil {
		return nil, err
	}

	return encoding.ReadN[T](r, count)
}
