package decoder

import "github.com/go-e57/e57reader/binding"

// ConstantDecoder decodes a field whose prototype terminal declares a
// single fixed value (min == max): it consumes zero input bytes per record
// and therefore never blocks on input. Its bytestream carries a
// zero-length entry in every DATA packet, so unlike every other decoder
// variant it has no byte stream of its own to learn the section's record
// count from.
//
// Because of that, ConstantDecoder does not fill its bound buffer to
// capacity on its own: it emits exactly as many records as LimitTo last
// set, no more, even if its buffer has room for more. The reader calls
// LimitTo once per Read, after driving every data-bearing channel, passing
// the record count those channels actually produced — so a constant field
// never desyncs from the channels that do carry real data, including on a
// final, less-than-capacity batch. See reader.Reader.Read.
type ConstantDecoder struct {
	b         *binding.Binding
	value     int64
	remaining int
}

// NewConstantDecoder builds a decoder that always emits value. It emits
// nothing until LimitTo is called.
func NewConstantDecoder(b *binding.Binding, value int64) *ConstantDecoder {
	return &ConstantDecoder{b: b, value: value}
}

// LimitTo caps the number of records the next InputProcess call may emit.
func (d *ConstantDecoder) LimitTo(n int) {
	d.remaining = n
}

func (d *ConstantDecoder) IsOutputBlocked() bool {
	return d.remaining <= 0 || d.b.NextIndex() >= d.b.Capacity()
}

func (d *ConstantDecoder) IsInputBlocked() bool {
	return false
}

func (d *ConstantDecoder) InputProcess([]byte) (int, error) {
	for !d.IsOutputBlocked() {
		if err := d.b.WriteInt(d.value, 1, 0); err != nil {
			return 0, err
		}
		d.remaining--
	}

	return 0, nil
}
