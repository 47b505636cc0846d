// Package errs defines the sentinel errors returned by every package in
// this module. Call sites wrap a sentinel with additional context using
// fmt.Errorf("...: %w", errs.ErrX, ...) or the ContextError type below;
// callers should use errors.Is against the sentinels, never string
// comparison against Error().
package errs

import "errors"

var (
	// ErrBadAPIArgument is returned for malformed caller input: an empty
	// buffer list, a zero capacity, a stride smaller than the element size.
	ErrBadAPIArgument = errors.New("bad api argument")

	// ErrBuffersNotCompatible is returned when a subsequent Read call
	// supplies bindings whose count or per-index representation differs
	// from the set a reader was opened with.
	ErrBuffersNotCompatible = errors.New("buffers not compatible with open reader")

	// ErrMalformedPacket is returned when a packet's directory lengths
	// don't fit its declared size, or its bytestream count doesn't match
	// the prototype's terminal count.
	ErrMalformedPacket = errors.New("malformed packet")

	// ErrBadCVPacket is returned when a packet known to be a CompressedVector
	// data packet by position has a different packet type on disk.
	ErrBadCVPacket = errors.New("unexpected compressedvector packet type")

	// ErrNoBufferForElement is returned when a binding's path names no
	// terminal of the prototype, or when every terminal must be bound and
	// one has no binding.
	ErrNoBufferForElement = errors.New("no compatible buffer for element")

	// ErrConversionRequired is returned when a binding's representation
	// differs from the prototype field's on-disk representation group and
	// the binding's DoConversion flag is false.
	ErrConversionRequired = errors.New("conversion required but not requested")

	// ErrValueOutOfRange is returned when a decoded value cannot be
	// represented in the bound buffer's representation (e.g. 40000 into an
	// int16 binding).
	ErrValueOutOfRange = errors.New("value out of range for binding representation")

	// ErrReaderNotOpen is returned by Reader.Read and Reader.Seek after
	// Close.
	ErrReaderNotOpen = errors.New("reader not open")

	// ErrImageFileNotOpen is returned when an operation is attempted on an
	// ImageFile handle that has been closed.
	ErrImageFileNotOpen = errors.New("image file not open")

	// ErrNotImplemented is returned by Reader.Seek.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInternal signals an invariant violation: output-count skew across
	// channels, a write past a binding's capacity, or an out-of-range
	// bytestream or terminal index. These should
	// never occur through the public API; they indicate a bug.
	ErrInternal = errors.New("internal invariant violation")

	// ErrCorruptFile is returned when a physical page's checksum does not
	// verify.
	ErrCorruptFile = errors.New("corrupt file: checksum mismatch")

	// ErrShortRead is returned when a read hits EOF before the requested
	// number of bytes were available.
	ErrShortRead = errors.New("short read: unexpected end of file")

	// ErrCacheExhausted is returned when the packet cache has no slot with
	// zero holders to evict. Each reader channel holds at most one packet
	// lock, so this occurs when the cache has fewer slots than the reader
	// has bound channels on distinct packets.
	ErrCacheExhausted = errors.New("packet cache exhausted: no evictable slot")
)
