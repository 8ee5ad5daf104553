// Package options implements generic functional options.
//
// A constructor declares its option type as an alias and applies the caller's
// options to a config value:
//
//	type WriterOption = options.Option[*writerConfig]
//
//	func WithCompression(c format.CompressionType) WriterOption {
//	    return options.New(func(cfg *writerConfig) error { ... })
//	}
//
//	cfg := defaultWriterConfig()
//	if err := options.Apply(cfg, opts...); err != nil { ... }
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
