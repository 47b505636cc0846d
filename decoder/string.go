package decoder

import (
	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/endian"
)

// lengthPrefixSize is the width, in bytes, of a string record's length
// prefix. The format calls for a length-prefixed UTF-8 concatenation but
// leaves the prefix width unstated (the writer side that would pin this
// down is out of scope); 4 bytes is chosen, little-endian like every other
// multi-byte field in this format (see DESIGN.md).
const lengthPrefixSize = 4

// StringDecoder decodes a length-prefixed UTF-8 string bytestream.
type StringDecoder struct {
	b            *binding.Binding
	inputBlocked bool
}

// NewStringDecoder builds a decoder writing into a RepUString binding.
func NewStringDecoder(b *binding.Binding) *StringDecoder {
	return &StringDecoder{b: b}
}

func (d *StringDecoder) IsOutputBlocked() bool {
	return d.b.NextIndex() >= d.b.Capacity()
}

func (d *StringDecoder) IsInputBlocked() bool {
	return d.inputBlocked
}

func (d *StringDecoder) InputProcess(data []byte) (int, error) {
	consumed := 0
	d.inputBlocked = false

	for {
		if d.IsOutputBlocked() {
			return consumed, nil
		}

		remaining := data[consumed:]
		if len(remaining) < lengthPrefixSize {
			d.inputBlocked = true
			return consumed, nil
		}

		strLen := int(endian.Wire.Uint32(remaining[:lengthPrefixSize]))
		if len(remaining) < lengthPrefixSize+strLen {
			d.inputBlocked = true
			return consumed, nil
		}

		value := string(remaining[lengthPrefixSize : lengthPrefixSize+strLen])
		if err := d.b.WriteString(value); err != nil {
			return consumed, err
		}

		consumed += lengthPrefixSize + strLen
	}
}
