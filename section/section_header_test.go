package section

import (
	"testing"

	"github.com/go-e57/e57reader/errs"
	"github.com/stretchr/testify/require"
)

func TestNewCompressedVectorSectionHeader(t *testing.T) {
	h := NewCompressedVectorSectionHeader()
	require.Equal(t, uint8(1), h.SectionID)
	require.Zero(t, h.SectionLogicalLength)
	require.Zero(t, h.DataPhysicalOffset)
}

func TestCompressedVectorSectionHeader_RoundTrip(t *testing.T) {
	h := CompressedVectorSectionHeader{
		SectionID:            1,
		SectionLogicalLength: 4096,
		DataPhysicalOffset:   32,
		IndexPhysicalOffset:  0,
	}

	data := h.Bytes()
	require.Len(t, data, SectionHeaderSize)

	var got CompressedVectorSectionHeader
	require.NoError(t, got.Parse(data))
	require.Equal(t, h, got)
}

func TestCompressedVectorSectionHeader_ParseWrongSize(t *testing.T) {
	var h CompressedVectorSectionHeader
	err := h.Parse(make([]byte, SectionHeaderSize-1))
	require.ErrorIs(t, err, errs.ErrMalformedPacket)
}

func TestCompressedVectorSectionHeader_ParseHelper(t *testing.T) {
	h := CompressedVectorSectionHeader{SectionID: 1, DataPhysicalOffset: 32, SectionLogicalLength: 64}
	buf := append(h.Bytes(), 0xFF, 0xFF) // extra trailing bytes should be ignored

	got, err := ParseCompressedVectorSectionHeader(buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestCompressedVectorSectionHeader_ParseHelperShort(t *testing.T) {
	_, err := ParseCompressedVectorSectionHeader(make([]byte, SectionHeaderSize-1))
	require.ErrorIs(t, err, errs.ErrMalformedPacket)
}

func TestCompressedVectorSectionHeader_Verify(t *testing.T) {
	h := CompressedVectorSectionHeader{DataPhysicalOffset: 100}

	require.NoError(t, h.Verify(1000))
	require.Error(t, h.Verify(50))  // offset beyond file
	require.Error(t, h.Verify(100)) // offset must be strictly less than file length

	zero := CompressedVectorSectionHeader{}
	require.Error(t, zero.Verify(1000))
}
