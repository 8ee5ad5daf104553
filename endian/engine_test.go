package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, engine.AppendUint32(nil, 0x01020304))
	require.True(t, IsLittleEndian(engine))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, engine.AppendUint32(nil, 0x01020304))
	require.False(t, IsLittleEndian(engine))
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()

	buf := engine.AppendUint64(nil, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))

	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	require.Equal(t, probe[0] == 0x02, IsLittleEndian(engine))
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name   string
		little bool
	}{
		{"little", true},
		{"LE", true},
		{"big", false},
		{"Be", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := ParseEngine(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.little, IsLittleEndian(engine))
		})
	}

	engine, err := ParseEngine("native")
	require.NoError(t, err)
	require.NotNil(t, engine)

	_, err = ParseEngine("middle")
	require.Error(t, err)
}
