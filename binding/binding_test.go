package binding

import (
	"testing"

	"github.com/go-e57/e57reader/errs"
	"github.com/stretchr/testify/require"
)

func TestInt32Binding_WriteIntNoScaling(t *testing.T) {
	buf := make([]int32, 3)
	b, err := NewInt32Binding("/points/x", buf, false, false)
	require.NoError(t, err)

	require.NoError(t, b.WriteInt(42, 1, 0))
	require.NoError(t, b.WriteInt(-7, 1, 0))
	require.Equal(t, 2, b.NextIndex())
	require.Equal(t, []int32{42, -7, 0}, buf)
}

func TestInt32Binding_OverflowWithoutScaling(t *testing.T) {
	buf := make([]int32, 1)
	b, err := NewInt32Binding("/points/x", buf, false, false)
	require.NoError(t, err)

	err = b.WriteInt(1<<40, 1, 0)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
}

func TestBinding_ScalingRequiresOptIn(t *testing.T) {
	buf := make([]int32, 1)
	b, err := NewInt32Binding("/points/x", buf, false, false)
	require.NoError(t, err)

	err = b.WriteInt(100, 0.001, 0)
	require.ErrorIs(t, err, errs.ErrConversionRequired)
}

func TestBinding_ScalingApplied(t *testing.T) {
	buf := make([]float64, 1)
	b, err := NewFloat64Binding("/points/x", buf, false, true)
	require.NoError(t, err)

	require.NoError(t, b.WriteInt(1000, 0.001, 0.5))
	require.InDelta(t, 1.5, buf[0], 1e-9)
}

func TestInt16Binding_ScaledOverflow(t *testing.T) {
	buf := make([]int16, 1)
	b, err := NewInt16Binding("/points/x", buf, false, true)
	require.NoError(t, err)

	err = b.WriteInt(1<<30, 2.0, 0)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
}

func TestBoolBinding(t *testing.T) {
	buf := make([]bool, 2)
	b, err := NewBoolBinding("/points/invalid", buf)
	require.NoError(t, err)

	require.NoError(t, b.WriteInt(0, 1, 0))
	require.NoError(t, b.WriteInt(1, 1, 0))
	require.Equal(t, []bool{false, true}, buf)
}

func TestFloat32Binding_WriteFloat(t *testing.T) {
	buf := make([]float32, 1)
	b, err := NewFloat32Binding("/points/x", buf, false, false)
	require.NoError(t, err)

	require.NoError(t, b.WriteFloat(3.5))
	require.Equal(t, float32(3.5), buf[0])
}

func TestIntegerBinding_RejectsFloatWithoutConversion(t *testing.T) {
	buf := make([]int32, 1)
	b, err := NewInt32Binding("/points/x", buf, false, false)
	require.NoError(t, err)

	err = b.WriteFloat(1.5)
	require.ErrorIs(t, err, errs.ErrConversionRequired)
}

func TestIntegerBinding_AcceptsFloatWithConversion(t *testing.T) {
	buf := make([]int32, 1)
	b, err := NewInt32Binding("/points/x", buf, true, false)
	require.NoError(t, err)

	require.NoError(t, b.WriteFloat(4.6))
	require.Equal(t, int32(5), buf[0])
}

func TestStringBinding(t *testing.T) {
	values := make([]string, 2)
	b, err := NewStringBinding("/points/name", &values)
	require.NoError(t, err)

	require.NoError(t, b.WriteString("hello"))
	require.NoError(t, b.WriteString("world"))
	require.Equal(t, []string{"hello", "world"}, values)

	err = b.WriteInt(1, 1, 0)
	require.ErrorIs(t, err, errs.ErrConversionRequired)
}

func TestBinding_CapacityOverflow(t *testing.T) {
	buf := make([]int32, 1)
	b, err := NewInt32Binding("/points/x", buf, false, false)
	require.NoError(t, err)

	require.NoError(t, b.WriteInt(1, 1, 0))
	err = b.WriteInt(2, 1, 0)
	require.ErrorIs(t, err, errs.ErrInternal)
}

func TestBinding_RewindResetsCursor(t *testing.T) {
	buf := make([]int32, 1)
	b, err := NewInt32Binding("/points/x", buf, false, false)
	require.NoError(t, err)

	require.NoError(t, b.WriteInt(1, 1, 0))
	b.Rewind()
	require.Equal(t, 0, b.NextIndex())
	require.NoError(t, b.WriteInt(2, 1, 0))
	require.Equal(t, int32(2), buf[0])
}

func TestNewBinding_RejectsBadArgs(t *testing.T) {
	_, err := NewInt32Binding("", make([]int32, 1), false, false)
	require.ErrorIs(t, err, errs.ErrBadAPIArgument)

	_, err = NewInt32Binding("/x", nil, false, false)
	require.ErrorIs(t, err, errs.ErrBadAPIArgument)
}

func TestCheckSetCompatible(t *testing.T) {
	a, err := NewInt32Binding("/x", make([]int32, 1), false, false)
	require.NoError(t, err)
	b, err := NewInt32Binding("/x", make([]int32, 1), false, false)
	require.NoError(t, err)

	require.NoError(t, CheckSetCompatible([]*Binding{a}, []*Binding{b}))

	c, err := NewFloat32Binding("/x", make([]float32, 1), false, false)
	require.NoError(t, err)
	require.ErrorIs(t, CheckSetCompatible([]*Binding{a}, []*Binding{c}), errs.ErrBuffersNotCompatible)

	require.ErrorIs(t, CheckSetCompatible([]*Binding{a}, []*Binding{a, b}), errs.ErrBuffersNotCompatible)
}
