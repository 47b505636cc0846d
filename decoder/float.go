package decoder

import (
	"math"

	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/endian"
)

// FloatDecoder decodes a byte-aligned, little-endian IEEE 754 float
// bytestream, 32 or 64 bits wide. Unlike IntegerDecoder it never straddles
// a byte with leftover bits: a record is either fully present in data or
// not consumed at all.
type FloatDecoder struct {
	b            *binding.Binding
	width        int // 4 or 8
	inputBlocked bool
}

// NewFloat32Decoder builds a decoder for 32-bit float records.
func NewFloat32Decoder(b *binding.Binding) *FloatDecoder {
	return &FloatDecoder{b: b, width: 4}
}

// NewFloat64Decoder builds a decoder for 64-bit float records.
func NewFloat64Decoder(b *binding.Binding) *FloatDecoder {
	return &FloatDecoder{b: b, width: 8}
}

func (d *FloatDecoder) IsOutputBlocked() bool {
	return d.b.NextIndex() >= d.b.Capacity()
}

func (d *FloatDecoder) IsInputBlocked() bool {
	return d.inputBlocked
}

func (d *FloatDecoder) InputProcess(data []byte) (int, error) {
	consumed := 0
	d.inputBlocked = false

	for {
		if d.IsOutputBlocked() {
			return consumed, nil
		}

		if len(data)-consumed < d.width {
			d.inputBlocked = true
			return consumed, nil
		}

		var v float64
		if d.width == 4 {
			v = float64(math.Float32frombits(endian.Wire.Uint32(data[consumed : consumed+4])))
		} else {
			v = math.Float64frombits(endian.Wire.Uint64(data[consumed : consumed+8]))
		}

		if err := d.b.WriteFloat(v); err != nil {
			return consumed, err
		}

		consumed += d.width
	}
}
