package decoder

import (
	"math/bits"

	"github.com/go-e57/e57reader/binding"
)

// IntegerDecoder decodes a bit-packed integer bytestream, applying an
// additive min offset and, when the terminal declares a non-trivial
// scale/offset, the scaled-integer transform — both variants share the
// same bit-unpacking mechanics and differ only in what they pass to
// binding.Binding.WriteInt.
//
// Fields are packed LSB-first: the first record's low bit is the low bit of
// the first input byte, with no byte alignment between records.
type IntegerDecoder struct {
	b    *binding.Binding
	min  int64
	width uint

	scale, offset float64

	accum     uint64
	accumBits uint

	inputBlocked bool
}

// NewIntegerDecoder builds a decoder for a field whose raw values range
// over [min, max]. scale and offset should be 1 and 0 for a plain
// bit-packed integer field, or the terminal's real scale/offset for a
// scaled-integer field.
func NewIntegerDecoder(b *binding.Binding, min, max int64, scale, offset float64) *IntegerDecoder {
	width := bitWidth(min, max)

	return &IntegerDecoder{b: b, min: min, width: width, scale: scale, offset: offset}
}

// bitWidth returns the number of bits needed to represent every value in
// [min, max] as an unsigned offset from min.
func bitWidth(min, max int64) uint {
	if max <= min {
		return 0
	}

	return uint(bits.Len64(uint64(max - min)))
}

func (d *IntegerDecoder) IsOutputBlocked() bool {
	return d.b.NextIndex() >= d.b.Capacity()
}

func (d *IntegerDecoder) IsInputBlocked() bool {
	return d.inputBlocked
}

func (d *IntegerDecoder) InputProcess(data []byte) (int, error) {
	consumed := 0
	d.inputBlocked = false

	for {
		if d.IsOutputBlocked() {
			return consumed, nil
		}

		for d.accumBits < d.width && consumed < len(data) && d.accumBits <= 56 {
			d.accum |= uint64(data[consumed]) << d.accumBits
			d.accumBits += 8
			consumed++
		}

		if d.accumBits < d.width {
			d.inputBlocked = true
			return consumed, nil
		}

		var raw uint64
		if d.width == 0 {
			raw = 0
		} else {
			mask := uint64(1)<<d.width - 1
			raw = d.accum & mask
			d.accum >>= d.width
			d.accumBits -= d.width
		}

		value := int64(raw) + d.min
		if err := d.b.WriteInt(value, d.scale, d.offset); err != nil {
			return consumed, err
		}
	}
}
