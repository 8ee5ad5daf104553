// Package endian selects the byte order used by fixed-width integer streams.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so one
// value serves both the fixed-width writer and its reader.
//
//	engine := endian.GetLittleEndianEngine()
//	w := encoding.NewRawWriter[uint32](engine)
//
// All engines are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// EndianEngine is satisfied by binary.LittleEndian, binary.BigEndian and
// binary.NativeEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	return binary.NativeEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var probe [2]byte
	engine.PutUint16(probe[:], 0x0102)

	return probe[0] == 0x02
}

// ParseEngine resolves "little", "big" or "native" (case-insensitive).
func ParseEngine(name string) (EndianEngine, error) {
	switch strings.ToLower(name) {
	case "little", "le":
		return GetLittleEndianEngine(), nil
	case "big", "be":
		return GetBigEndianEngine(), nil
	case "native":
		return GetNativeEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order: %q", name)
	}
}
