// Package section defines the low-level binary structures of the E57
// CompressedVector binary section: the section header, the packet header
// shared by every packet, and the bytestream directory carried by data
// packets.
//
// # Section layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ CompressedVectorSectionHeader (32 bytes, fixed)           │
//	├──────────────────────────────────────────────────────────┤
//	│ Packet 0 (INDEX | DATA | EMPTY)                           │
//	│ Packet 1                                                  │
//	│ ...                                                        │
//	│ Packet N                                                   │
//	└──────────────────────────────────────────────────────────┘
//
// Every packet begins with the same 4-byte header: packetType, flags, and a
// little-endian logicalLengthMinus1. Real byte length is
// logicalLengthMinus1+1 and is always a multiple of 4.
//
// A DATA packet additionally carries, immediately after the header, a
// 2-byte bytestreamCount followed by that many 2-byte bytestream lengths,
// followed by the concatenated bytestream payloads in index order with no
// inter-stream padding. Trailing bytes up to the next 4-byte boundary are
// zero.
//
// All integers in this package are little-endian, per endian.Wire.
package section
