package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNative(t *testing.T) {
	result := Native()

	var probe uint16 = 0x0102
	b := (*[2]byte)(unsafe.Pointer(&probe))

	switch b[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
	default:
		t.Fatalf("unexpected probe byte: %v", b[0])
	}

	require.Equal(t, result == binary.LittleEndian, IsNativeLittleEndian())
}

func TestEngines(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), little)
	require.Implements(t, (*EndianEngine)(nil), big)

	var v uint32 = 0x01020304
	lb := little.AppendUint32(nil, v)
	bb := big.AppendUint32(nil, v)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, lb)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bb)
	require.Equal(t, v, little.Uint32(lb))
	require.Equal(t, v, big.Uint32(bb))

	var v64 uint64 = 0x0102030405060708
	lb64 := little.AppendUint64(nil, v64)
	bb64 := big.AppendUint64(nil, v64)

	require.NotEqual(t, lb64, bb64)
	require.Equal(t, v64, little.Uint64(lb64))
	require.Equal(t, v64, big.Uint64(bb64))
}
