package section

// PacketType identifies the kind of packet found at the start of every
// packet in a CompressedVector binary section.
type PacketType uint8

const (
	// PacketTypeIndex is a navigation packet; it carries no bytestream data.
	PacketTypeIndex PacketType = 0
	// PacketTypeData carries the bytestream directory and payloads for one
	// packet's worth of records.
	PacketTypeData PacketType = 1
	// PacketTypeEmpty is padding; it carries no bytestream data.
	PacketTypeEmpty PacketType = 2
)

func (t PacketType) String() string {
	switch t {
	case PacketTypeIndex:
		return "INDEX"
	case PacketTypeData:
		return "DATA"
	case PacketTypeEmpty:
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}

const (
	// PacketHeaderSize is the fixed size, in bytes, of the header shared by
	// every packet type: 1 byte packetType, 1 byte flags, 2 bytes
	// logicalLengthMinus1.
	PacketHeaderSize = 4

	// PacketLengthAlignment is the byte multiple every packet's logical
	// length must be padded to.
	PacketLengthAlignment = 4

	// BytestreamLengthFieldSize is the size, in bytes, of each entry in a
	// data packet's bytestream-length directory.
	BytestreamLengthFieldSize = 2

	// SectionHeaderSize is the fixed size, in bytes, of the
	// CompressedVectorSectionHeader at the start of a binary section.
	SectionHeaderSize = 32

	// PhysicalPageSize is the size, in bytes, of one physical page: 1020
	// data bytes followed by a 4-byte checksum trailer.
	PhysicalPageSize = 1024

	// PhysicalPageDataSize is the number of data bytes per physical page,
	// i.e. PhysicalPageSize minus the checksum trailer.
	PhysicalPageDataSize = PhysicalPageSize - 4
)
