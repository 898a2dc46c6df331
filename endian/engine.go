// Package endian provides the byte order engine used by histkit's snapshot
// encoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces of the standard
// encoding/binary package into a single EndianEngine, so snapshot writers can
// use the allocation-free Append* methods and readers the corresponding
// Uint* methods through one value. Snapshots are written in the host's
// native order by default; the header records which order was used.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is the unified byte order interface used by snapshot encoders
// and decoders. binary.LittleEndian and binary.BigEndian both satisfy it.
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

// Native determines the host's byte order.
func Native() binary.ByteOrder {
	// For a little-endian host the low byte of 0x0100 sits at the lowest
	// address.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}
