package section

import (
	"github.com/go-e57/e57reader/endian"
	"github.com/go-e57/e57reader/errs"
)

// DataPacket is a parsed view over one DATA packet's bytes: the shared
// header, the bytestream-length directory, and the offsets of each
// bytestream's payload within the packet.
//
// DataPacket does not copy the underlying bytes; Raw must remain valid for
// as long as the DataPacket is used. This matches the packet cache's
// contract that a locked payload is stable until its guard releases.
type DataPacket struct {
	Header PacketHeader
	Raw    []byte

	bytestreamOffsets []int
	bytestreamLengths []int
}

// ParseDataPacket parses a DATA packet from raw, which must be exactly one
// packet's worth of bytes (Header.Length() long).
//
// wantBytestreamCount is the prototype's terminal count; a mismatch between
// it and the packet's own bytestreamCount field is a MalformedPacket.
func ParseDataPacket(raw []byte, wantBytestreamCount int) (*DataPacket, error) {
	var header PacketHeader
	if err := header.Parse(raw); err != nil {
		return nil, err
	}

	if header.Type != PacketTypeData {
		return nil, errs.ErrBadCVPacket
	}

	if len(raw) < header.Length() {
		return nil, errs.ErrMalformedPacket
	}
	raw = raw[:header.Length()]

	const directoryCountSize = 2
	if len(raw) < PacketHeaderSize+directoryCountSize {
		return nil, errs.ErrMalformedPacket
	}

	bytestreamCount := int(endian.Wire.Uint16(raw[PacketHeaderSize : PacketHeaderSize+directoryCountSize]))
	if bytestreamCount != wantBytestreamCount {
		return nil, errs.ErrMalformedPacket
	}

	dirStart := PacketHeaderSize + directoryCountSize
	dirEnd := dirStart + bytestreamCount*BytestreamLengthFieldSize
	if dirEnd > len(raw) {
		return nil, errs.ErrMalformedPacket
	}

	offsets := make([]int, bytestreamCount)
	lengths := make([]int, bytestreamCount)
	cursor := dirEnd

	for i := 0; i < bytestreamCount; i++ {
		lenOff := dirStart + i*BytestreamLengthFieldSize
		length := int(endian.Wire.Uint16(raw[lenOff : lenOff+BytestreamLengthFieldSize]))

		offsets[i] = cursor
		lengths[i] = length
		cursor += length

		if cursor > len(raw) {
			return nil, errs.ErrMalformedPacket
		}
	}

	return &DataPacket{
		Header:            header,
		Raw:               raw,
		bytestreamOffsets: offsets,
		bytestreamLengths: lengths,
	}, nil
}

// BytestreamCount returns the number of bytestreams described by this
// packet's directory.
func (p *DataPacket) BytestreamCount() int {
	return len(p.bytestreamLengths)
}

// GetBytestreamBufferLength returns the byte length of bytestream i's
// payload within this packet.
func (p *DataPacket) GetBytestreamBufferLength(i int) (int, error) {
	if i < 0 || i >= len(p.bytestreamLengths) {
		return 0, errs.ErrInternal
	}

	return p.bytestreamLengths[i], nil
}

// GetBytestream returns the payload slice for bytestream i. The slice
// aliases Raw and is valid only as long as the packet's cache lock is held.
func (p *DataPacket) GetBytestream(i int) ([]byte, error) {
	if i < 0 || i >= len(p.bytestreamLengths) {
		return nil, errs.ErrInternal
	}

	start := p.bytestreamOffsets[i]
	end := start + p.bytestreamLengths[i]

	return p.Raw[start:end], nil
}
