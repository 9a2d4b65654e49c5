// Package endian provides byte-order detection and a unified
// read/write/append interface for binary encoding.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder into one
// EndianEngine interface so callers can hold a single value that both
// decodes and appends, and exposes CheckEndianness/IsNativeLittleEndian
// so a codec can decide whether a host-native fast path (e.g. Array's
// unsafe slice view over wire bytes, which are always little-endian) is
// safe to take.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host's native byte order is
// little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host's native byte order is
// big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine uses the host's native byte
// order.
func CompareNativeEndian(engine EndianEngine) bool {
	return CheckEndianness() == binary.ByteOrder(engine)
}

// GetLittleEndianEngine returns the little-endian EndianEngine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian EndianEngine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
