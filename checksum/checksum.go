// Package checksum computes the 32-bit trailer the file cursor verifies at
// the end of every 1024-byte physical page of an E57 file.
package checksum

import "github.com/cespare/xxhash/v2"

// Page computes the checksum for one physical page's data bytes (the first
// section.PhysicalPageDataSize bytes of the page; the caller excludes the
// trailer itself).
//
// The on-disk format reserves a 4-byte checksum per 1024-byte physical page
// without pinning its algorithm to any particular writer's choice, so
// xxhash64 truncated to its low 32 bits was chosen over reimplementing an
// undocumented CRC — see DESIGN.md.
func Page(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

// Verify reports whether want matches the checksum of data.
func Verify(data []byte, want uint32) bool {
	return Page(data) == want
}
