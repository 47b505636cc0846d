package decoder

import (
	"testing"

	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/endian"
	"github.com/stretchr/testify/require"
)

func encodeString(s string) []byte {
	out := make([]byte, lengthPrefixSize+len(s))
	endian.Wire.PutUint32(out[:lengthPrefixSize], uint32(len(s)))
	copy(out[lengthPrefixSize:], s)
	return out
}

func TestStringDecoder_Basic(t *testing.T) {
	values := make([]string, 2)
	b, err := binding.NewStringBinding("/name", &values)
	require.NoError(t, err)

	d := NewStringDecoder(b)

	var data []byte
	data = append(data, encodeString("hello")...)
	data = append(data, encodeString("world")...)

	consumed, err := d.InputProcess(data)
	require.NoError(t, err)
	require.Equal(t, len(data), consumed)
	require.Equal(t, []string{"hello", "world"}, values)
}

func TestStringDecoder_InputBlockedMidLength(t *testing.T) {
	values := make([]string, 1)
	b, err := binding.NewStringBinding("/name", &values)
	require.NoError(t, err)

	d := NewStringDecoder(b)

	consumed, err := d.InputProcess([]byte{0x05, 0x00})
	require.NoError(t, err)
	require.Equal(t, 0, consumed)
	require.True(t, d.IsInputBlocked())
}

func TestStringDecoder_InputBlockedMidPayload(t *testing.T) {
	values := make([]string, 1)
	b, err := binding.NewStringBinding("/name", &values)
	require.NoError(t, err)

	d := NewStringDecoder(b)

	full := encodeString("hello")
	consumed, err := d.InputProcess(full[:lengthPrefixSize+2])
	require.NoError(t, err)
	require.Equal(t, 0, consumed)
	require.True(t, d.IsInputBlocked())

	consumed2, err := d.InputProcess(full)
	require.NoError(t, err)
	require.Equal(t, len(full), consumed2)
	require.Equal(t, []string{"hello"}, values)
}
