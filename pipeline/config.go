package pipeline

import (
	"errors"
	"fmt"

	"github.com/arloliu/seqcodec/endian"
	"github.com/arloliu/seqcodec/format"
	"github.com/arloliu/seqcodec/internal/hash"
	"github.com/arloliu/seqcodec/internal/options"
)

type config struct {
	column      string
	encoding    format.EncodingType
	compression format.CompressionType
	engine      endian.EndianEngine
}

func defaultConfig() *config {
	return &config{
		encoding:    format.TypeVarint,
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures a pipeline Writer or Reader.
//
// A Reader must be built with the same encoding, compression and byte order
// as the Writer that produced the payload.
type Option = options.Option[*config]

// WithEncoding selects the codec stack. The default is format.TypeVarint.
func WithEncoding(encodingType format.EncodingType) Option {
	return options.New(func(cfg *config) error {
		if !encodingType.IsValid() {
			return fmt.Errorf("invalid encoding type: 0x%02x", uint8(encodingType))
		}
		cfg.encoding = encodingType

		return nil
	})
}

// WithCompression selects the payload compression. The default is
// format.CompressionNone.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !compressionType.IsValid() {
			return fmt.Errorf("invalid compression type: 0x%02x", uint8(compressionType))
		}
		cfg.compression = compressionType

		return nil
	})
}

// WithEndian sets the byte order of the fixed-width format.TypeRaw stage.
// Other encodings ignore it. The default is little-endian.
func WithEndian(engine endian.EndianEngine) Option {
	return options.New(func(cfg *config) error {
		if engine == nil {
			return errors.New("endian engine cannot be nil")
		}
		cfg.engine = engine

		return nil
	})
}

// WithColumnName attaches a column name, used to derive Column.ID.
func WithColumnName(name string) Option {
	return options.New(func(cfg *config) error {
		if name == "" {
			return errors.New("column name cannot be empty")
		}
		cfg.column = name

		return nil
	})
}

// Column describes how one integer column is encoded.
//
// The encoded payload does not record any of this; callers store the
// descriptor (or an equivalent) next to the bytes and rebuild the reader from
// it.
type Column struct {
	Name        string
	Encoding    format.EncodingType
	Compression format.CompressionType

	// Endian is the byte order of a format.TypeRaw column. Nil keeps the
	// little-endian default.
	Endian endian.EndianEngine
}

// ID returns the xxHash64 of the column name.
func (c Column) ID() uint64 {
	return hash.ColumnID(c.Name)
}

// Options converts the descriptor into pipeline options. Zero-valued fields
// keep the defaults.
func (c Column) Options() []Option {
	var opts []Option
	if c.Name != "" {
		opts = append(opts, WithColumnName(c.Name))
	}
	if c.Encoding != 0 {
		opts = append(opts, WithEncoding(c.Encoding))
	}
	if c.Compression != 0 {
		opts = append(opts, WithCompression(c.Compression))
	}
	if c.Endian != nil {
		opts = append(opts, WithEndian(c.Endian))
	}

	return opts
}

func (cfg *config) describe() Column {
	return Column{
		Name:        cfg.column,
		Encoding:    cfg.encoding,
		Compression: cfg.compression,
		Endian:      cfg.engine,
	}
}

// label names the stream in error messages.
func (cfg *config) label() string {
	if cfg.column == "" {
		return "stream"
	}

	return fmt.Sprintf("column %q", cfg.column)
}
