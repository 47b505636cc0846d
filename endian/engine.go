// Package endian provides byte order utilities for reading the E57 binary
// section, which is always little-endian on disk.
//
// It extends Go's standard encoding/binary package by combining ByteOrder
// and AppendByteOrder into a single EndianEngine interface, and exposes the
// host's native byte order so decoders can take a fast unsafe-copy path
// when the host happens to be little-endian too.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface. binary.LittleEndian satisfies it directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Wire is the byte order of every fixed-width field in an E57 binary
// section: packet headers, section headers, and the bit-packed, scaled, and
// float decoder outputs. The format defines no big-endian variant.
var Wire EndianEngine = binary.LittleEndian

// CheckEndianness uses a fixed integer value to determine the host's byte
// order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian, the
// condition under which decoders may copy wire bytes directly into a
// destination buffer instead of going through the EndianEngine.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}
