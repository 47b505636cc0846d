// Package proto models the CompressedVector prototype: the flat,
// positionally-ordered set of terminal fields every record in the section
// carries one value of, one per bytestream.
//
// The full E57 node tree (structures, nested vectors, and so on) is out of
// scope for this read pipeline; proto only needs enough of it to answer
// "what on-disk type does bytestream i hold" and "which bytestream index
// does this path map to".
package proto

import (
	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/errs"
)

// TerminalKind is the on-disk type of a prototype field, used to select a
// decoder variant.
type TerminalKind uint8

const (
	// KindInteger is a bit-packed integer field with known min/max.
	KindInteger TerminalKind = iota
	// KindScaledInteger is a bit-packed integer field with a scale/offset
	// applied to produce its logical value.
	KindScaledInteger
	// KindConstant is an integer field with a single fixed value; its
	// decoder consumes zero input bytes per record.
	KindConstant
	// KindFloat32 is an IEEE 754 32-bit float field.
	KindFloat32
	// KindFloat64 is an IEEE 754 64-bit float field.
	KindFloat64
	// KindString is a length-prefixed UTF-8 string field.
	KindString
)

// Terminal describes one field of the prototype: its path, on-disk kind,
// and the parameters a decoder or binding needs to interpret it.
type Terminal struct {
	Path string
	Kind TerminalKind

	// Min, Max bound a KindInteger or KindScaledInteger field's raw integer
	// range; they determine the decoder's bit width.
	Min, Max int64

	// Scale, Offset apply to KindScaledInteger fields: logical = raw*Scale
	// + Offset. Both are ignored for every other kind.
	Scale, Offset float64

	// ConstantValue is the fixed raw value of a KindConstant field.
	ConstantValue int64
}

// Representation returns the memory representation a binding bound to t
// would natively hold without any conversion.
func (t Terminal) Representation() binding.Representation {
	switch t.Kind {
	case KindFloat32:
		return binding.RepFloat32
	case KindFloat64:
		return binding.RepFloat64
	case KindString:
		return binding.RepUString
	default:
		return binding.RepInt64
	}
}

// Prototype is the ordered list of terminals in a CompressedVector,
// indexed both by bytestream position and by path.
type Prototype struct {
	terminals []Terminal
	byPath    map[string]int
}

// NewPrototype builds a Prototype from terminals in bytestream order.
// Returns errs.ErrBadAPIArgument if terminals is empty or contains a
// duplicate path.
func NewPrototype(terminals []Terminal) (*Prototype, error) {
	if len(terminals) == 0 {
		return nil, errs.ErrBadAPIArgument
	}

	byPath := make(map[string]int, len(terminals))
	for i, term := range terminals {
		if _, dup := byPath[term.Path]; dup {
			return nil, errs.ErrBadAPIArgument
		}
		byPath[term.Path] = i
	}

	cp := make([]Terminal, len(terminals))
	copy(cp, terminals)

	return &Prototype{terminals: cp, byPath: byPath}, nil
}

// TerminalCount returns the number of terminals, i.e. the number of
// bytestreams every DATA packet in the section carries.
func (p *Prototype) TerminalCount() int {
	return len(p.terminals)
}

// Terminal returns the terminal at bytestream index i.
func (p *Prototype) Terminal(i int) (Terminal, error) {
	if i < 0 || i >= len(p.terminals) {
		return Terminal{}, errs.ErrInternal
	}

	return p.terminals[i], nil
}

// FindTerminalPosition returns the bytestream index of path, or false if
// path is not a terminal of this prototype.
func (p *Prototype) FindTerminalPosition(path string) (int, bool) {
	i, ok := p.byPath[path]
	return i, ok
}

// CheckBuffers verifies that bindings names a subset of the prototype's
// paths with no duplicates, and that every bound representation matches
// what its terminal would require unless the binding opts into conversion.
//
// If allowMissing is false, every terminal must have a corresponding
// binding; a gap fails with errs.ErrNoBufferForElement.
func (p *Prototype) CheckBuffers(bindings []*binding.Binding, allowMissing bool) error {
	if len(bindings) == 0 {
		return errs.ErrBadAPIArgument
	}

	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		idx, ok := p.byPath[b.Path()]
		if !ok {
			return errs.ErrNoBufferForElement
		}

		if seen[b.Path()] {
			return errs.ErrBadAPIArgument
		}
		seen[b.Path()] = true

		term := p.terminals[idx]
		if term.Representation() != b.Representation() && !b.DoConversion() {
			return errs.ErrConversionRequired
		}
	}

	if !allowMissing && len(seen) != len(p.terminals) {
		return errs.ErrNoBufferForElement
	}

	return nil
}
