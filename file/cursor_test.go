package file

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/go-e57/e57reader/endian"
	"github.com/go-e57/e57reader/errs"
	"github.com/go-e57/e57reader/section"
	"github.com/stretchr/testify/require"
)

// buildPhysicalFile assembles physical pages out of consecutive data bytes,
// appending a valid checksum trailer to every full page.
func buildPhysicalFile(t *testing.T, logical []byte) []byte {
	t.Helper()

	var out []byte
	for len(logical) > 0 {
		n := section.PhysicalPageDataSize
		if n > len(logical) {
			n = len(logical)
		}

		page := make([]byte, section.PhysicalPageDataSize)
		copy(page, logical[:n])

		sum := uint32(xxhash.Sum64(page))
		trailer := make([]byte, 4)
		endian.Wire.PutUint32(trailer, sum)

		out = append(out, page...)
		out = append(out, trailer...)
		logical = logical[n:]
	}

	return out
}

func TestCursor_ReadLogicalSinglePage(t *testing.T) {
	want := bytes.Repeat([]byte{0xAB}, 100)
	phys := buildPhysicalFile(t, want)

	c := NewCursor(bytes.NewReader(phys), int64(len(phys)))

	got := make([]byte, len(want))
	require.NoError(t, c.ReadLogical(0, got))
	require.Equal(t, want, got)
}

func TestCursor_ReadLogicalSpansPages(t *testing.T) {
	want := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, section.PhysicalPageDataSize) // several pages
	phys := buildPhysicalFile(t, want)

	c := NewCursor(bytes.NewReader(phys), int64(len(phys)))

	got := make([]byte, len(want))
	require.NoError(t, c.ReadLogical(0, got))
	require.Equal(t, want, got)

	// Read a slice straddling a page boundary.
	mid := make([]byte, 16)
	offset := int64(section.PhysicalPageDataSize - 8)
	require.NoError(t, c.ReadLogical(offset, mid))
	require.Equal(t, want[offset:offset+16], mid)
}

func TestCursor_ChecksumMismatch(t *testing.T) {
	want := bytes.Repeat([]byte{0xCC}, section.PhysicalPageDataSize)
	phys := buildPhysicalFile(t, want)
	phys[0] ^= 0xFF // corrupt the first data byte without fixing the checksum

	c := NewCursor(bytes.NewReader(phys), int64(len(phys)))

	got := make([]byte, 10)
	err := c.ReadLogical(0, got)
	require.ErrorIs(t, err, errs.ErrCorruptFile)
}

func TestCursor_PhysicalToLogical(t *testing.T) {
	c := NewCursor(bytes.NewReader(nil), 0)

	require.Equal(t, int64(0), c.PhysicalToLogical(0))
	require.Equal(t, int64(10), c.PhysicalToLogical(10))
	require.Equal(t, int64(section.PhysicalPageDataSize), c.PhysicalToLogical(section.PhysicalPageSize))
	// An offset landing inside the checksum trailer clamps to the next page's start.
	require.Equal(t, int64(section.PhysicalPageDataSize), c.PhysicalToLogical(section.PhysicalPageDataSize+2))
}

func TestCursor_LengthLogical(t *testing.T) {
	want := bytes.Repeat([]byte{0x00}, section.PhysicalPageDataSize*2)
	phys := buildPhysicalFile(t, want)

	c := NewCursor(bytes.NewReader(phys), int64(len(phys)))
	require.Equal(t, int64(len(want)), c.LengthLogical())
}

func TestCursor_ShortRead(t *testing.T) {
	c := NewCursor(bytes.NewReader(nil), 0)

	got := make([]byte, 4)
	err := c.ReadLogical(0, got)
	require.ErrorIs(t, err, errs.ErrShortRead)
}
