package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/seqcodec/encoding"
	"github.com/arloliu/seqcodec/format"
	"github.com/arloliu/seqcodec/pipeline"
)

const usage = `Usage: seqcodec <encode|decode> [flags]

  seqcodec encode [-encoding deltarle] [-compression none] [-width 64] [-in file] [-out file]
      reads whitespace-separated unsigned integers, writes the payload
      (hex on stdout when -out is not set)

  seqcodec decode -count N [-encoding deltarle] [-compression none] [-width 64] [-in file]
      reads a payload (hex on stdin when -in is not set), prints one value per line
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:], os.Stdin, os.Stdout)
	case "decode":
		err = runDecode(os.Args[2:], os.Stdin, os.Stdout)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type commonFlags struct {
	encoding    string
	compression string
	width       int
	in          string
	verbose     bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.encoding, "encoding", "deltarle", "Encoding stack (raw, varint, delta, rle, deltarle)")
	fs.StringVar(&c.compression, "compression", "none", "Payload compression (none, zstd, s2, lz4)")
	fs.IntVar(&c.width, "width", 64, "Integer width in bits (8, 16, 32, 64)")
	fs.StringVar(&c.in, "in", "", "Input file (default stdin)")
	fs.BoolVar(&c.verbose, "v", false, "Log encoding details to stderr")
}

func (c *commonFlags) options() ([]pipeline.Option, error) {
	enc, err := format.ParseEncodingType(c.encoding)
	if err != nil {
		return nil, err
	}

	comp, err := format.ParseCompressionType(c.compression)
	if err != nil {
		return nil, err
	}

	switch c.width {
	case 8, 16, 32, 64:
	default:
		return nil, fmt.Errorf("unsupported width %d", c.width)
	}

	return []pipeline.Option{pipeline.WithEncoding(enc), pipeline.WithCompression(comp)}, nil
}

func (c *commonFlags) input(stdin io.Reader) ([]byte, error) {
	if c.in == "" {
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(c.in)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return data, nil
}

// newLogger returns a development logger when verbose is set and a no-op
// logger otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func runEncode(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	var (
		common commonFlags
		out    string
	)
	common.register(fs)
	fs.StringVar(&out, "out", "", "Output file for the binary payload (default hex on stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := common.options()
	if err != nil {
		return err
	}

	logger := newLogger(common.verbose)
	defer func() { _ = logger.Sync() }()

	text, err := common.input(stdin)
	if err != nil {
		return err
	}

	values, err := parseValues(string(text), common.width)
	if err != nil {
		return err
	}

	payload, err := encodeWidth(values, common.width, opts)
	if err != nil {
		return err
	}

	logger.Info("encoded",
		zap.String("encoding", common.encoding),
		zap.String("compression", common.compression),
		zap.Int("width", common.width),
		zap.Int("values", len(values)),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("raw_bytes", len(values)*common.width/8),
	)

	if out != "" {
		return os.WriteFile(out, payload, 0o644)
	}

	_, err = fmt.Fprintln(stdout, hex.EncodeToString(payload))

	return err
}

func runDecode(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	var (
		common commonFlags
		count  int
	)
	common.register(fs)
	fs.IntVar(&count, "count", -1, "Number of values to decode (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if count < 0 {
		return errors.New("-count is required")
	}

	opts, err := common.options()
	if err != nil {
		return err
	}

	logger := newLogger(common.verbose)
	defer func() { _ = logger.Sync() }()

	payload, err := common.input(stdin)
	if err != nil {
		return err
	}

	if common.in == "" {
		payload, err = hex.DecodeString(strings.TrimSpace(string(payload)))
		if err != nil {
			return fmt.Errorf("decode hex input: %w", err)
		}
	}

	values, err := decodeWidth(payload, count, common.width, opts)
	if err != nil {
		return err
	}

	logger.Info("decoded",
		zap.String("encoding", common.encoding),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("values", len(values)),
	)

	w := bufio.NewWriter(stdout)
	for _, v := range values {
		w.WriteString(strconv.FormatUint(v, 10))
		w.WriteByte('\n')
	}

	return w.Flush()
}

// parseValues splits text on whitespace and parses each field as an unsigned
// integer of the given bit width.
func parseValues(text string, width int) ([]uint64, error) {
	fields := strings.Fields(text)
	values := make([]uint64, 0, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, width)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values = append(values, v)
	}

	return values, nil
}

func encodeWidth(values []uint64, width int, opts []pipeline.Option) ([]byte, error) {
	switch width {
	case 8:
		return pipeline.Encode(narrow[uint8](values), opts...)
	case 16:
		return pipeline.Encode(narrow[uint16](values), opts...)
	case 32:
		return pipeline.Encode(narrow[uint32](values), opts...)
	default:
		return pipeline.Encode(values, opts...)
	}
}

func decodeWidth(payload []byte, count, width int, opts []pipeline.Option) ([]uint64, error) {
	switch width {
	case 8:
		return widen[uint8](pipeline.Decode[uint8](payload, count, opts...))
	case 16:
		return widen[uint16](pipeline.Decode[uint16](payload, count, opts...))
	case 32:
		return widen[uint32](pipeline.Decode[uint32](payload, count, opts...))
	default:
		return pipeline.Decode[uint64](payload, count, opts...)
	}
}

// narrow converts values already range-checked by parseValues.
func narrow[T encoding.Unsigned](values []uint64) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}

	return out
}

func widen[T encoding.Unsigned](values []T, err error) ([]uint64, error) {
	if err != nil {
		return nil, err
	}

	out := make([]uint64, len(values))
	for i, v := range values {
		out[i] = uint64(v)
	}

	return out, nil
}
