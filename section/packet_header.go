package section

import (
	"github.com/go-e57/e57reader/endian"
	"github.com/go-e57/e57reader/errs"
)

// PacketHeader is the 4-byte header shared by every packet in a
// CompressedVector binary section.
type PacketHeader struct {
	// Type identifies the packet kind: INDEX, DATA, or EMPTY.
	Type PacketType // byte offset 0

	// Flags is reserved for packet-level flags; this read pipeline does
	// not interpret any bit of it.
	Flags uint8 // byte offset 1

	// LogicalLengthMinus1 plus one gives the packet's real byte length,
	// which is always a multiple of PacketLengthAlignment.
	LogicalLengthMinus1 uint16 // byte offset 2-3
}

// Length returns the packet's real byte length.
func (h PacketHeader) Length() int {
	return int(h.LogicalLengthMinus1) + 1
}

// Parse parses a PacketHeader from the first PacketHeaderSize bytes of data.
//
// Returns errs.ErrMalformedPacket if data is shorter than PacketHeaderSize
// or if the resulting length is not a multiple of PacketLengthAlignment.
func (h *PacketHeader) Parse(data []byte) error {
	if len(data) < PacketHeaderSize {
		return errs.ErrMalformedPacket
	}

	h.Type = PacketType(data[0])
	h.Flags = data[1]
	h.LogicalLengthMinus1 = endian.Wire.Uint16(data[2:4])

	if h.Length()%PacketLengthAlignment != 0 {
		return errs.ErrMalformedPacket
	}

	return nil
}

// Bytes serializes the header into a PacketHeaderSize-byte slice.
func (h PacketHeader) Bytes() []byte {
	b := make([]byte, PacketHeaderSize)
	b[0] = byte(h.Type)
	b[1] = h.Flags
	endian.Wire.PutUint16(b[2:4], h.LogicalLengthMinus1)

	return b
}

// ParsePacketHeader parses a PacketHeader from a byte slice of at least
// PacketHeaderSize bytes.
func ParsePacketHeader(data []byte) (PacketHeader, error) {
	var h PacketHeader
	err := h.Parse(data)
	return h, err
}

// NewPacketHeader builds a header for a packet of the given type and real
// byte length. length must already be a multiple of PacketLengthAlignment
// and at least PacketHeaderSize.
func NewPacketHeader(t PacketType, length int) (PacketHeader, error) {
	if length < PacketHeaderSize || length%PacketLengthAlignment != 0 || length-1 > 0xFFFF {
		return PacketHeader{}, errs.ErrBadAPIArgument
	}

	return PacketHeader{Type: t, LogicalLengthMinus1: uint16(length - 1)}, nil
}
