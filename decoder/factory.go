package decoder

import (
	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/errs"
	"github.com/go-e57/e57reader/proto"
)

// New builds the decoder variant matching term's on-disk kind, writing
// through b.
func New(term proto.Terminal, b *binding.Binding) (Decoder, error) {
	switch term.Kind {
	case proto.KindInteger:
		return NewIntegerDecoder(b, term.Min, term.Max, 1, 0), nil
	case proto.KindScaledInteger:
		return NewIntegerDecoder(b, term.Min, term.Max, term.Scale, term.Offset), nil
	case proto.KindConstant:
		return NewConstantDecoder(b, term.ConstantValue), nil
	case proto.KindFloat32:
		return NewFloat32Decoder(b), nil
	case proto.KindFloat64:
		return NewFloat64Decoder(b), nil
	case proto.KindString:
		return NewStringDecoder(b), nil
	default:
		return nil, errs.ErrInternal
	}
}
