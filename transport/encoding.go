// Package transport provides whole-file decompression for image files
// shipped pre-compressed (.e57.zst, .e57.lz4, and so on). The file is
// otherwise an abstract byte source and nothing about how its bytes reach
// the process is pinned down here; this package sits in front of
// file.Cursor and materializes the decompressed logical+checksum byte
// stream once, at open time, behind an in-memory io.ReaderAt.
//
// Encoding.None is the default and changes nothing: the caller's
// io.ReaderAt is used directly and the file cursor reads from it
// unchanged.
package transport

// Encoding identifies the whole-file compression applied to an image
// file's bytes, independent of anything inside the E57 binary section.
type Encoding uint8

const (
	// None passes the underlying reader through unchanged.
	None Encoding = iota
	// Zstd decompresses the entire file as a single Zstandard stream.
	Zstd
	// S2 decompresses the entire file as a single S2 stream.
	S2
	// LZ4 decompresses the entire file as a single LZ4 frame.
	LZ4
)

func (e Encoding) String() string {
	switch e {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
