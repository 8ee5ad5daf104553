// Package encoding implements composable binary codecs for sequences of
// unsigned integers.
//
// The package is built from four layers, each depending only on the one below:
//
//  1. Base-128 varint codec: AppendBase128, PutBase128, DecodeBase128 and the
//     Base128 value wrapper.
//  2. Base stream adapters: Base128Writer / Base128Reader turn the codec into a
//     sequence-oriented stream over a growable buffer (write side) or an
//     immutable byte range (read side). RawWriter / RawReader offer the same
//     surface for fixed-width values.
//  3. Delta transform: DeltaWriter / DeltaReader store first differences of a
//     non-decreasing sequence.
//  4. Run-length transform: RLEWriter / RLEReader store (run length, value)
//     pairs for runs of equal consecutive values.
//
// # Stream Contract
//
// Every layer implements the same small surface:
//
//	type StreamWriter[T Unsigned] interface {
//	    Put(value T) error
//	    Size() int
//	    Close() error
//	}
//
//	type StreamReader[T Unsigned] interface {
//	    Next() (T, error)
//	}
//
// The transforms accept any implementation, so they nest without knowing what
// they wrap:
//
//	base := encoding.NewBase128Writer[uint64]()
//	defer base.Finish()
//
//	w := encoding.NewDeltaWriter[uint64](encoding.NewRLEWriter[uint64](base))
//	for _, ts := range []uint64{100, 100, 100, 105, 105, 110} {
//	    if err := w.Put(ts); err != nil {
//	        return err
//	    }
//	}
//	if err := w.Close(); err != nil { // flushes the last run
//	    return err
//	}
//
//	r := encoding.NewDeltaReader[uint64](
//	    encoding.NewRLEReader[uint64](encoding.NewBase128Reader[uint64](base.Bytes())))
//	values, err := encoding.ReadN[uint64](r, 6)
//
// The deltas 100,0,0,5,0,5 reach the RLE layer, which stores them as five
// (run length, value) pairs. The opposite order, RLE outside delta, feeds run
// lengths interleaved with values into the delta layer and fails with
// ErrNonMonotonic for this input.
//
// The reader stack must mirror the writer stack. Encoded bytes carry no type,
// count or pipeline metadata; keeping that alongside the data is the caller's
// job.
//
// # Errors
//
// All failures are returned to the immediate caller as errors wrapping one of
// the package sentinels (ErrCapacityExhausted, ErrNonMonotonic, ErrEndOfStream,
// ErrTruncated, ErrOverflow, ErrZeroLengthRun, ErrClosed, ErrInvalidRange).
// Nothing is retried and nothing is logged.
//
// # Concurrency
//
// Writers and readers are single-owner values with no internal locking. Use a
// separate instance per goroutine; per-instance state is never shared, so
// independent columns can be encoded in parallel.
package encoding
