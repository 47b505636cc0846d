package section

import (
	"github.com/go-e57/e57reader/endian"
	"github.com/go-e57/e57reader/errs"
)

// CompressedVectorSectionHeader is the fixed-size record at the start of a
// CompressedVector binary section.
type CompressedVectorSectionHeader struct {
	// SectionID identifies this section as a CompressedVector section.
	SectionID uint8 // byte offset 0

	// SectionLogicalLength is the number of logical bytes in the section,
	// counted from the section's start, inclusive of this header.
	SectionLogicalLength uint64 // byte offset 8-15

	// DataPhysicalOffset is the physical file offset of the first DATA
	// packet in the section.
	DataPhysicalOffset uint64 // byte offset 16-23

	// IndexPhysicalOffset is the physical file offset of the section's
	// INDEX packet chain, if any. Unused by the read pipeline but present
	// in every CompressedVector section header on disk.
	IndexPhysicalOffset uint64 // byte offset 24-31
}

// NewCompressedVectorSectionHeader creates a header with SectionID set and
// every length/offset field zero.
func NewCompressedVectorSectionHeader() CompressedVectorSectionHeader {
	return CompressedVectorSectionHeader{SectionID: 1}
}

// Parse parses a CompressedVectorSectionHeader from a byte slice.
//
// Parameters:
//   - data: byte slice containing the header (must be exactly SectionHeaderSize bytes)
//
// Returns:
//   - error: errs.ErrMalformedPacket if data is not SectionHeaderSize bytes
func (h *CompressedVectorSectionHeader) Parse(data []byte) error {
	if len(data) != SectionHeaderSize {
		return errs.ErrMalformedPacket
	}

	h.SectionID = data[0]
	// bytes 1-7 are reserved and must be zero on write; ignored on read.
	h.SectionLogicalLength = endian.Wire.Uint64(data[8:16])
	h.DataPhysicalOffset = endian.Wire.Uint64(data[16:24])
	h.IndexPhysicalOffset = endian.Wire.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a SectionHeaderSize-byte slice.
func (h *CompressedVectorSectionHeader) Bytes() []byte {
	b := make([]byte, SectionHeaderSize)

	b[0] = h.SectionID
	endian.Wire.PutUint64(b[8:16], h.SectionLogicalLength)
	endian.Wire.PutUint64(b[16:24], h.DataPhysicalOffset)
	endian.Wire.PutUint64(b[24:32], h.IndexPhysicalOffset)

	return b
}

// Verify checks the header against the physical file length it was read
// from. It does not verify any packet contents.
func (h *CompressedVectorSectionHeader) Verify(physicalFileLength uint64) error {
	if h.DataPhysicalOffset == 0 || h.DataPhysicalOffset >= physicalFileLength {
		return errs.ErrMalformedPacket
	}

	return nil
}

// ParseCompressedVectorSectionHeader parses a header from a byte slice of
// at least SectionHeaderSize bytes.
func ParseCompressedVectorSectionHeader(data []byte) (CompressedVectorSectionHeader, error) {
	var h CompressedVectorSectionHeader
	if len(data) < SectionHeaderSize {
		return h, errs.ErrMalformedPacket
	}

	err := h.Parse(data[:SectionHeaderSize])
	return h, err
}
