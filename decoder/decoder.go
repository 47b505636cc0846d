// Package decoder implements the bytestream decoder variants: each
// CompressedVector field has exactly one decoder, selected by its
// prototype terminal's on-disk kind, that turns a bytestream's raw bytes
// into values written through a binding.Binding.
package decoder

// Decoder is the contract every variant implements.
//
// InputProcess consumes as many bytes of data as it can without
// overflowing its bound buffer's remaining capacity, and returns exactly
// how many bytes it accepted. Any unaccepted suffix must be re-presented on
// the next call. Passing a nil or empty data drains any internally staged
// bits into the output buffer without requiring new input.
type Decoder interface {
	InputProcess(data []byte) (consumed int, err error)

	// IsOutputBlocked reports whether the bound buffer is full.
	IsOutputBlocked() bool

	// IsInputBlocked reports whether the decoder needs more input bytes to
	// produce its next record, and none remain in the current call.
	IsInputBlocked() bool
}
