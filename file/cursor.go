// Package file implements the logical file cursor: reading bytes at a
// logical offset, and converting between the physical addressing used by
// on-disk structures and the logical addressing used by the rest of the
// read pipeline.
//
// E57 interleaves a 4-byte xxhash-truncated checksum every
// section.PhysicalPageDataSize bytes of physical space (section.
// PhysicalPageSize per page including the trailer). The logical stream
// omits these checksums entirely; every other component in this module
// addresses packets and section headers logically.
package file

import (
	"io"

	"github.com/go-e57/e57reader/checksum"
	"github.com/go-e57/e57reader/endian"
	"github.com/go-e57/e57reader/errs"
	"github.com/go-e57/e57reader/section"
)

// Cursor reads the logical byte stream of an E57 image file out of an
// underlying io.ReaderAt, verifying the per-page checksum of every physical
// page it touches.
type Cursor struct {
	r              io.ReaderAt
	physicalLength int64
}

// NewCursor wraps r, whose total physical length is physicalLength.
func NewCursor(r io.ReaderAt, physicalLength int64) *Cursor {
	return &Cursor{r: r, physicalLength: physicalLength}
}

// LengthPhysical returns the underlying reader's physical byte length.
func (c *Cursor) LengthPhysical() int64 {
	return c.physicalLength
}

// LengthLogical returns the logical byte length, i.e. the physical length
// with every page's checksum trailer excluded.
func (c *Cursor) LengthLogical() int64 {
	return c.PhysicalToLogical(c.physicalLength)
}

// PhysicalToLogical converts a physical byte offset into its logical
// equivalent, clamping any offset that falls within a page's checksum
// trailer to the start of the following page's data.
func (c *Cursor) PhysicalToLogical(physicalOffset int64) int64 {
	pageIndex := physicalOffset / section.PhysicalPageSize
	withinPage := physicalOffset % section.PhysicalPageSize
	if withinPage > section.PhysicalPageDataSize {
		withinPage = section.PhysicalPageDataSize
	}

	return pageIndex*section.PhysicalPageDataSize + withinPage
}

// logicalToPhysicalPage returns, for a logical offset, the physical page
// index it falls in and the byte offset within that page's data region.
func logicalToPhysicalPage(logicalOffset int64) (pageIndex int64, withinPageData int64) {
	return logicalOffset / section.PhysicalPageDataSize, logicalOffset % section.PhysicalPageDataSize
}

// ReadLogical reads len(p) logical bytes starting at logicalOffset into p.
//
// Returns errs.ErrShortRead at unexpected EOF and errs.ErrCorruptFile if any
// physical page touched by the read fails its checksum.
func (c *Cursor) ReadLogical(logicalOffset int64, p []byte) error {
	pos := logicalOffset
	remaining := p

	for len(remaining) > 0 {
		pageIndex, withinPageData := logicalToPhysicalPage(pos)

		data, err := c.readPage(pageIndex)
		if err != nil {
			return err
		}

		n := copy(remaining, data[withinPageData:])
		if n == 0 {
			return errs.ErrShortRead
		}

		remaining = remaining[n:]
		pos += int64(n)
	}

	return nil
}

// readPage reads and checksum-verifies the data portion of physical page
// pageIndex, returning its section.PhysicalPageDataSize data bytes.
func (c *Cursor) readPage(pageIndex int64) ([]byte, error) {
	physOffset := pageIndex * section.PhysicalPageSize
	if physOffset >= c.physicalLength {
		return nil, errs.ErrShortRead
	}

	buf := make([]byte, section.PhysicalPageSize)
	n, err := readFull(c.r, buf, physOffset)
	if err != nil {
		return nil, err
	}

	if n < section.PhysicalPageDataSize+4 {
		return nil, errs.ErrShortRead
	}

	data := buf[:section.PhysicalPageDataSize]
	want := endian.Wire.Uint32(buf[section.PhysicalPageDataSize : section.PhysicalPageDataSize+4])

	if !checksum.Verify(data, want) {
		return nil, errs.ErrCorruptFile
	}

	return data, nil
}

// readFull reads as much of buf as the underlying reader has available
// starting at off, tolerating a short final page at EOF.
func readFull(r io.ReaderAt, buf []byte, off int64) (int, error) {
	n, err := r.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return n, err
	}

	return n, nil
}
