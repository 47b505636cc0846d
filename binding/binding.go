package binding

import (
	"math"

	"github.com/go-e57/e57reader/errs"
)

// Binding is a typed memory region bound to a single prototype field. Its
// representation tag, conversion policy, and scaling policy are fixed at
// construction; only the write cursor (NextIndex) and the underlying
// values mutate across reads.
type Binding struct {
	path         string
	rep          Representation
	capacity     int
	nextIndex    int
	doConversion bool
	doScaling    bool

	writeInt    func(i int, raw int64, scale, offset float64) error
	writeFloat  func(i int, v float64) error
	writeString func(i int, v string) error
}

// Path returns the prototype path this binding was constructed for.
func (b *Binding) Path() string { return b.path }

// Representation returns the binding's fixed memory representation.
func (b *Binding) Representation() Representation { return b.rep }

// Capacity returns the binding's element capacity.
func (b *Binding) Capacity() int { return b.capacity }

// NextIndex returns the index the next written value will land at.
func (b *Binding) NextIndex() int { return b.nextIndex }

// DoConversion reports whether this binding accepts values whose native
// representation differs from its own.
func (b *Binding) DoConversion() bool { return b.doConversion }

// DoScaling reports whether this binding applies scale/offset to values
// that carry them.
func (b *Binding) DoScaling() bool { return b.doScaling }

// Rewind resets the write cursor to 0, as done at the start of every
// reader.Read call.
func (b *Binding) Rewind() { b.nextIndex = 0 }

// checkCompatible reports whether other can replace b across a subsequent
// Read call: same path, same representation.
func (b *Binding) checkCompatible(other *Binding) error {
	if b.path != other.path || b.rep != other.rep {
		return errs.ErrBuffersNotCompatible
	}

	return nil
}

// Rebind swaps b's destination memory and policy flags for other's,
// resetting the write cursor. It is used by reader.Reader.Read to let a
// caller supply a fresh buffer set on a subsequent call while the
// underlying decoders, constructed once against the original *Binding
// identities, keep writing through the same objects.
//
// Callers must check checkCompatible (via CheckSetCompatible) first; Rebind
// itself re-verifies path and representation and fails with
// errs.ErrBuffersNotCompatible otherwise.
func (b *Binding) Rebind(other *Binding) error {
	if err := b.checkCompatible(other); err != nil {
		return err
	}

	b.capacity = other.capacity
	b.doConversion = other.doConversion
	b.doScaling = other.doScaling
	b.writeInt = other.writeInt
	b.writeFloat = other.writeFloat
	b.writeString = other.writeString
	b.nextIndex = 0

	return nil
}

// CheckSetCompatible reports whether newSet can replace oldSet across a
// subsequent reader.Read call: same count, same path and representation at
// every index, in order.
func CheckSetCompatible(oldSet, newSet []*Binding) error {
	if len(oldSet) != len(newSet) {
		return errs.ErrBuffersNotCompatible
	}

	for i := range oldSet {
		if err := oldSet[i].checkCompatible(newSet[i]); err != nil {
			return err
		}
	}

	return nil
}

// WriteInt delivers a decoded integer record (as produced by a bit-packed
// or scaled-integer decoder) to the binding at NextIndex, applying
// scale/offset when non-trivial, and advances NextIndex.
//
// Returns errs.ErrConversionRequired if scale/offset is non-trivial and
// DoScaling is false, or if this is a RepUString binding, which accepts no
// integer value. Returns errs.ErrValueOutOfRange
// if the resulting value overflows an integer destination representation.
// Returns errs.ErrInternal if the write cursor has already reached
// capacity.
func (b *Binding) WriteInt(raw int64, scale, offset float64) error {
	if b.nextIndex >= b.capacity {
		return errs.ErrInternal
	}

	if err := b.writeInt(b.nextIndex, raw, scale, offset); err != nil {
		return err
	}

	b.nextIndex++

	return nil
}

// WriteFloat delivers a decoded floating-point record to the binding at
// NextIndex and advances NextIndex. See WriteInt for the error conditions
// shared with integer destinations.
func (b *Binding) WriteFloat(v float64) error {
	if b.nextIndex >= b.capacity {
		return errs.ErrInternal
	}

	if err := b.writeFloat(b.nextIndex, v); err != nil {
		return err
	}

	b.nextIndex++

	return nil
}

// WriteString delivers a decoded string record to the binding at NextIndex
// and advances NextIndex. Only valid for RepUString bindings.
func (b *Binding) WriteString(v string) error {
	if b.nextIndex >= b.capacity {
		return errs.ErrInternal
	}

	if err := b.writeString(b.nextIndex, v); err != nil {
		return err
	}

	b.nextIndex++

	return nil
}

func applyScale(raw int64, scale, offset float64, doScaling bool) (float64, bool, error) {
	if scale == 1 && offset == 0 {
		return float64(raw), false, nil
	}

	if !doScaling {
		return 0, false, errs.ErrConversionRequired
	}

	return float64(raw)*scale + offset, true, nil
}

func roundAndCheckRange(v float64, lo, hi int64) (int64, error) {
	r := math.Round(v)
	if r < float64(lo) || r > float64(hi) {
		return 0, errs.ErrValueOutOfRange
	}

	return int64(r), nil
}
