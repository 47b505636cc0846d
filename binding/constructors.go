package binding

import (
	"math"

	"github.com/go-e57/e57reader/errs"
)

func newBase(path string, rep Representation, capacity int, stride int, doConversion, doScaling bool) (*Binding, error) {
	if path == "" || capacity <= 0 {
		return nil, errs.ErrBadAPIArgument
	}

	if min := rep.MinStride(); min > 0 && stride < min {
		return nil, errs.ErrBadAPIArgument
	}

	return &Binding{
		path:         path,
		rep:          rep,
		capacity:     capacity,
		doConversion: doConversion,
		doScaling:    doScaling,
		writeInt:     alwaysConversionRequiredInt,
		writeFloat:   alwaysConversionRequiredFloat,
		writeString:  alwaysConversionRequiredString,
	}, nil
}

func alwaysConversionRequiredInt(int, int64, float64, float64) error { return errs.ErrConversionRequired }
func alwaysConversionRequiredFloat(int, float64) error                { return errs.ErrConversionRequired }
func alwaysConversionRequiredString(int, string) error                { return errs.ErrConversionRequired }

// newIntegerBinding builds the shared write closures for a fixed-width
// signed/unsigned integer destination of buf, with bounds [lo, hi].
func newIntegerBinding[T ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32](
	path string, buf []T, rep Representation, doConversion, doScaling bool, lo, hi int64,
) (*Binding, error) {
	b, err := newBase(path, rep, len(buf), rep.MinStride(), doConversion, doScaling)
	if err != nil {
		return nil, err
	}

	b.writeInt = func(i int, raw int64, scale, offset float64) error {
		v, scaled, err := applyScale(raw, scale, offset, doScaling)
		if err != nil {
			return err
		}

		var n int64
		if scaled {
			n, err = roundAndCheckRange(v, lo, hi)
			if err != nil {
				return err
			}
		} else {
			n = raw
			if n < lo || n > hi {
				return errs.ErrValueOutOfRange
			}
		}

		buf[i] = T(n)

		return nil
	}

	b.writeFloat = func(i int, v float64) error {
		if !doConversion {
			return errs.ErrConversionRequired
		}

		n, err := roundAndCheckRange(v, lo, hi)
		if err != nil {
			return err
		}

		buf[i] = T(n)

		return nil
	}

	return b, nil
}

// NewInt8Binding binds buf as an Int8 destination.
func NewInt8Binding(path string, buf []int8, doConversion, doScaling bool) (*Binding, error) {
	return newIntegerBinding(path, buf, RepInt8, doConversion, doScaling, math.MinInt8, math.MaxInt8)
}

// NewInt16Binding binds buf as an Int16 destination.
func NewInt16Binding(path string, buf []int16, doConversion, doScaling bool) (*Binding, error) {
	return newIntegerBinding(path, buf, RepInt16, doConversion, doScaling, math.MinInt16, math.MaxInt16)
}

// NewInt32Binding binds buf as an Int32 destination.
func NewInt32Binding(path string, buf []int32, doConversion, doScaling bool) (*Binding, error) {
	return newIntegerBinding(path, buf, RepInt32, doConversion, doScaling, math.MinInt32, math.MaxInt32)
}

// NewInt64Binding binds buf as an Int64 destination.
func NewInt64Binding(path string, buf []int64, doConversion, doScaling bool) (*Binding, error) {
	return newIntegerBinding(path, buf, RepInt64, doConversion, doScaling, math.MinInt64, math.MaxInt64)
}

// NewUInt8Binding binds buf as a UInt8 destination.
func NewUInt8Binding(path string, buf []uint8, doConversion, doScaling bool) (*Binding, error) {
	return newIntegerBinding(path, buf, RepUInt8, doConversion, doScaling, 0, math.MaxUint8)
}

// NewUInt16Binding binds buf as a UInt16 destination.
func NewUInt16Binding(path string, buf []uint16, doConversion, doScaling bool) (*Binding, error) {
	return newIntegerBinding(path, buf, RepUInt16, doConversion, doScaling, 0, math.MaxUint16)
}

// NewUInt32Binding binds buf as a UInt32 destination.
func NewUInt32Binding(path string, buf []uint32, doConversion, doScaling bool) (*Binding, error) {
	return newIntegerBinding(path, buf, RepUInt32, doConversion, doScaling, 0, math.MaxUint32)
}

// NewBoolBinding binds buf as a Bool destination. Integer records convert to
// bool as raw != 0, always, matching E57's common use of a 1-bit integer
// field to represent a boolean.
func NewBoolBinding(path string, buf []bool) (*Binding, error) {
	b, err := newBase(path, RepBool, len(buf), 1, true, false)
	if err != nil {
		return nil, err
	}

	b.writeInt = func(i int, raw int64, _, _ float64) error {
		buf[i] = raw != 0
		return nil
	}

	return b, nil
}

// NewFloat32Binding binds buf as a Float32 destination.
func NewFloat32Binding(path string, buf []float32, doConversion, doScaling bool) (*Binding, error) {
	b, err := newBase(path, RepFloat32, len(buf), 4, doConversion, doScaling)
	if err != nil {
		return nil, err
	}

	b.writeInt = func(i int, raw int64, scale, offset float64) error {
		v, _, err := applyScale(raw, scale, offset, doScaling)
		if err != nil {
			return err
		}

		buf[i] = float32(v)

		return nil
	}

	b.writeFloat = func(i int, v float64) error {
		buf[i] = float32(v)
		return nil
	}

	return b, nil
}

// NewFloat64Binding binds buf as a Float64 destination.
func NewFloat64Binding(path string, buf []float64, doConversion, doScaling bool) (*Binding, error) {
	b, err := newBase(path, RepFloat64, len(buf), 8, doConversion, doScaling)
	if err != nil {
		return nil, err
	}

	b.writeInt = func(i int, raw int64, scale, offset float64) error {
		v, _, err := applyScale(raw, scale, offset, doScaling)
		if err != nil {
			return err
		}

		buf[i] = v

		return nil
	}

	b.writeFloat = func(i int, v float64) error {
		buf[i] = v
		return nil
	}

	return b, nil
}

// NewStringBinding binds a growable string vector as a UString destination.
// Records are written into *buf by index; it is never grown, and its
// initial length (not capacity) is used as the binding's addressable
// capacity.
func NewStringBinding(path string, buf *[]string) (*Binding, error) {
	if buf == nil {
		return nil, errs.ErrBadAPIArgument
	}

	b, err := newBase(path, RepUString, len(*buf), 0, true, false)
	if err != nil {
		return nil, err
	}

	b.writeString = func(i int, v string) error {
		(*buf)[i] = v
		return nil
	}

	return b, nil
}
