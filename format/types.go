// Package format defines the identifiers shared by the seqcodec packages:
// the codec pipeline applied to an integer column and the general-purpose
// compression applied to the finished payload.
package format

import (
	"fmt"
	"strings"
)

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw      EncodingType = 0x1 // TypeRaw stores fixed-width values in a configured byte order.
	TypeVarint   EncodingType = 0x2 // TypeVarint stores each value as a base-128 varint.
	TypeDelta    EncodingType = 0x3 // TypeDelta stores first differences as varints.
	TypeRLE      EncodingType = 0x4 // TypeRLE stores (run length, value) pairs as varints.
	TypeDeltaRLE EncodingType = 0x5 // TypeDeltaRLE delta encodes the values, then run-length encodes the deltas.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var encodingNames = map[EncodingType]string{
	TypeRaw:      "Raw",
	TypeVarint:   "Varint",
	TypeDelta:    "Delta",
	TypeRLE:      "RLE",
	TypeDeltaRLE: "DeltaRLE",
}

var compressionNames = map[CompressionType]string{
	CompressionNone: "None",
	CompressionZstd: "Zstd",
	CompressionS2:   "S2",
	CompressionLZ4:  "LZ4",
}

func (e EncodingType) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}

	return "Unknown"
}

// IsValid reports whether e is one of the defined encoding types.
func (e EncodingType) IsValid() bool {
	_, ok := encodingNames[e]
	return ok
}

func (c CompressionType) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}

	return "Unknown"
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	_, ok := compressionNames[c]
	return ok
}

// ParseEncodingType resolves a case-insensitive encoding name such as "deltarle".
func ParseEncodingType(name string) (EncodingType, error) {
	for typ, typName := range encodingNames {
		if strings.EqualFold(typName, name) {
			return typ, nil
		}
	}

	return 0, fmt.Errorf("unknown encoding type: %q", name)
}

// ParseCompressionType resolves a case-insensitive compression name such as "zstd".
func ParseCompressionType(name string) (CompressionType, error) {
	for typ, typName := range compressionNames {
		if strings.EqualFold(typName, name) {
			return typ, nil
		}
	}

	return 0, fmt.Errorf("unknown compression type: %q", name)
}
