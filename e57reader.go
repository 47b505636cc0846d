// Package e57reader provides a binary reader for the ASTM E2807
// CompressedVector section of E57 point-cloud files.
//
// E57 stores point records column-wise: a CompressedVector section packs
// every field of a point cloud — x/y/z coordinates, intensity, color
// channels, and so on — into its own bit-packed or byte-aligned bytestream,
// directory-addressed out of variable-length packets. This module reads that
// binary layout directly; it does not parse the surrounding XML structure
// or the INDEX packet chain used for random-access seeking (see
// reader.Reader.Seek).
//
// # Basic Usage
//
// Opening an image file and reading records into typed buffers:
//
//	f, err := os.Open("scan.e57")
//	// ...
//	fi, _ := f.Stat()
//
//	imf, err := e57reader.OpenImageFile("scan.e57", f, fi.Size(), e57reader.EncodingNone)
//	// ...
//	defer imf.Close()
//
//	xBuf := make([]float64, 1024)
//	yBuf := make([]float64, 1024)
//	zBuf := make([]float64, 1024)
//
//	xb, _ := e57reader.NewFloat64Binding("/x", xBuf, false, false)
//	yb, _ := e57reader.NewFloat64Binding("/y", yBuf, false, false)
//	zb, _ := e57reader.NewFloat64Binding("/z", zBuf, false, false)
//
//	rd, err := e57reader.OpenReader(imf, sectionOffset, prototype,
//	    []*e57reader.Binding{xb, yb, zb})
//	// ...
//	defer rd.Close()
//
//	for {
//	    n, err := rd.Read()
//	    // ...
//	    if n == 0 {
//	        break
//	    }
//	    // xBuf[:n], yBuf[:n], zBuf[:n] now hold this batch's records
//	}
//
// # Package Structure
//
// This package re-exports the most commonly needed names from binding,
// proto, and reader for convenience. For prototype construction, decoder
// selection, or the packet cache, use those packages directly.
package e57reader

import (
	"io"

	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/proto"
	"github.com/go-e57/e57reader/reader"
	"github.com/go-e57/e57reader/transport"
)

// ImageFile owns the underlying file handle shared by every Reader opened
// against it.
type ImageFile = reader.ImageFile

// Reader drives one CompressedVector section's decode pipeline.
type Reader = reader.Reader

// ReaderOption configures a Reader at OpenReader time.
type ReaderOption = reader.Option

// Binding is a typed memory region bound to one prototype field.
type Binding = binding.Binding

// Prototype is the ordered set of terminal fields a CompressedVector
// section's records carry one value of.
type Prototype = proto.Prototype

// Terminal describes one field of a Prototype.
type Terminal = proto.Terminal

// TerminalKind is the on-disk type of a prototype field.
type TerminalKind = proto.TerminalKind

// Re-exported proto.TerminalKind values.
const (
	KindInteger       = proto.KindInteger
	KindScaledInteger = proto.KindScaledInteger
	KindConstant      = proto.KindConstant
	KindFloat32       = proto.KindFloat32
	KindFloat64       = proto.KindFloat64
	KindString        = proto.KindString
)

// Encoding identifies a whole-file compression scheme applied ahead of any
// E57 structure.
type Encoding = transport.Encoding

// Re-exported transport.Encoding values.
const (
	EncodingNone = transport.None
	EncodingZstd = transport.Zstd
	EncodingS2   = transport.S2
	EncodingLZ4  = transport.LZ4
)

// OpenImageFile opens an E57 image file backed by r.
func OpenImageFile(path string, r io.ReaderAt, physicalLength int64, enc Encoding) (*ImageFile, error) {
	return reader.OpenImageFile(path, r, physicalLength, enc)
}

// OpenReader opens a CompressedVectorReader over the section at
// sectionLogicalOffset, bound to prototype and bindings.
func OpenReader(imf *ImageFile, sectionLogicalOffset int64, prototype *Prototype, bindings []*Binding, opts ...ReaderOption) (*Reader, error) {
	return reader.OpenReader(imf, sectionLogicalOffset, prototype, bindings, opts...)
}

// WithCacheSlots overrides the packet cache's slot count.
func WithCacheSlots(n int) ReaderOption {
	return reader.WithCacheSlots(n)
}

// NewPrototype builds a Prototype from terminals in bytestream order.
func NewPrototype(terminals []Terminal) (*Prototype, error) {
	return proto.NewPrototype(terminals)
}

// NewFloat64Binding binds buf as a Float64 destination.
func NewFloat64Binding(path string, buf []float64, doConversion, doScaling bool) (*Binding, error) {
	return binding.NewFloat64Binding(path, buf, doConversion, doScaling)
}

// NewFloat32Binding binds buf as a Float32 destination.
func NewFloat32Binding(path string, buf []float32, doConversion, doScaling bool) (*Binding, error) {
	return binding.NewFloat32Binding(path, buf, doConversion, doScaling)
}

// NewInt32Binding binds buf as an Int32 destination.
func NewInt32Binding(path string, buf []int32, doConversion, doScaling bool) (*Binding, error) {
	return binding.NewInt32Binding(path, buf, doConversion, doScaling)
}

// NewUInt16Binding binds buf as a UInt16 destination.
func NewUInt16Binding(path string, buf []uint16, doConversion, doScaling bool) (*Binding, error) {
	return binding.NewUInt16Binding(path, buf, doConversion, doScaling)
}

// NewStringBinding binds a growable string vector as a UString destination.
func NewStringBinding(path string, buf *[]string) (*Binding, error) {
	return binding.NewStringBinding(path, buf)
}
