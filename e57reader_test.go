package e57reader_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	e57reader "github.com/go-e57/e57reader"
	"github.com/go-e57/e57reader/endian"
	"github.com/go-e57/e57reader/section"
	"github.com/stretchr/testify/require"
)

func packBits2(values ...byte) []byte {
	var accum uint64
	var accumBits uint
	var out []byte

	for _, v := range values {
		accum |= uint64(v) << accumBits
		accumBits += 2

		for accumBits >= 8 {
			out = append(out, byte(accum))
			accum >>= 8
			accumBits -= 8
		}
	}

	if accumBits > 0 {
		out = append(out, byte(accum))
	}

	return out
}

func float32le(values ...float32) []byte {
	var out []byte
	for _, v := range values {
		b := make([]byte, 4)
		endian.Wire.PutUint32(b, math.Float32bits(v))
		out = append(out, b...)
	}
	return out
}

func buildDataPacket(t *testing.T, bytestreams ...[]byte) []byte {
	t.Helper()

	body := make([]byte, 2)
	endian.Wire.PutUint16(body, uint16(len(bytestreams)))

	for _, bs := range bytestreams {
		lenField := make([]byte, section.BytestreamLengthFieldSize)
		endian.Wire.PutUint16(lenField, uint16(len(bs)))
		body = append(body, lenField...)
	}
	for _, bs := range bytestreams {
		body = append(body, bs...)
	}

	total := section.PacketHeaderSize + len(body)
	padded := total
	if rem := padded % section.PacketLengthAlignment; rem != 0 {
		padded += section.PacketLengthAlignment - rem
	}

	hdr, err := section.NewPacketHeader(section.PacketTypeData, padded)
	require.NoError(t, err)

	out := append(hdr.Bytes(), body...)
	for len(out) < padded {
		out = append(out, 0)
	}

	return out
}

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

// TestPackageLevelRoundTrip exercises the top-level wrappers end to end:
// opening an image file, building a prototype and bindings through the
// re-exported constructors, and reading a full CompressedVector section.
func TestPackageLevelRoundTrip(t *testing.T) {
	packet := buildDataPacket(t, packBits2(1, 2, 3), float32le(1.5, 2.5, 3.5))

	hdr := section.NewCompressedVectorSectionHeader()
	hdr.SectionLogicalLength = uint64(section.SectionHeaderSize + len(packet))
	hdr.DataPhysicalOffset = uint64(section.SectionHeaderSize)

	logical := append([]byte{}, hdr.Bytes()...)
	logical = append(logical, packet...)

	phys := buildPhysicalFile(t, logical)

	imf, err := e57reader.OpenImageFile("scan.e57", bytes.NewReader(phys), int64(len(phys)), e57reader.EncodingNone)
	require.NoError(t, err)
	defer imf.Close()

	prototype, err := e57reader.NewPrototype([]e57reader.Terminal{
		{Path: "/x", Kind: e57reader.KindInteger, Min: 0, Max: 3},
		{Path: "/y", Kind: e57reader.KindFloat32},
	})
	require.NoError(t, err)

	xBuf := make([]int32, 3)
	yBuf := make([]float32, 3)

	xb, err := e57reader.NewInt32Binding("/x", xBuf, true, false)
	require.NoError(t, err)
	yb, err := e57reader.NewFloat32Binding("/y", yBuf, false, false)
	require.NoError(t, err)

	rd, err := e57reader.OpenReader(imf, 0, prototype, []*e57reader.Binding{xb, yb}, e57reader.WithCacheSlots(4))
	require.NoError(t, err)
	defer rd.Close()

	n, err := rd.Read()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int32{1, 2, 3}, xBuf)
	require.Equal(t, []float32{1.5, 2.5, 3.5}, yBuf)

	n2, err := rd.Read()
	require.NoError(t, err)
	require.Equal(t, 0, n2)
}
