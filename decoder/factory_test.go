package decoder

import (
	"testing"

	"github.com/go-e57/e57reader/binding"
	"github.com/go-e57/e57reader/proto"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsVariantByKind(t *testing.T) {
	cases := []struct {
		name string
		term proto.Terminal
		bind func() (*binding.Binding, error)
		want any
	}{
		{
			name: "integer",
			term: proto.Terminal{Kind: proto.KindInteger, Min: 0, Max: 100},
			bind: func() (*binding.Binding, error) { return binding.NewInt32Binding("/x", make([]int32, 1), false, false) },
			want: &IntegerDecoder{},
		},
		{
			name: "scaled integer",
			term: proto.Terminal{Kind: proto.KindScaledInteger, Min: 0, Max: 100, Scale: 0.5},
			bind: func() (*binding.Binding, error) { return binding.NewFloat64Binding("/x", make([]float64, 1), false, true) },
			want: &IntegerDecoder{},
		},
		{
			name: "constant",
			term: proto.Terminal{Kind: proto.KindConstant, ConstantValue: 9},
			bind: func() (*binding.Binding, error) { return binding.NewInt32Binding("/x", make([]int32, 1), false, false) },
			want: &ConstantDecoder{},
		},
		{
			name: "float32",
			term: proto.Terminal{Kind: proto.KindFloat32},
			bind: func() (*binding.Binding, error) { return binding.NewFloat32Binding("/x", make([]float32, 1), false, false) },
			want: &FloatDecoder{},
		},
		{
			name: "float64",
			term: proto.Terminal{Kind: proto.KindFloat64},
			bind: func() (*binding.Binding, error) { return binding.NewFloat64Binding("/x", make([]float64, 1), false, false) },
			want: &FloatDecoder{},
		},
		{
			name: "string",
			term: proto.Terminal{Kind: proto.KindString},
			bind: func() (*binding.Binding, error) {
				values := make([]string, 1)
				return binding.NewStringBinding("/x", &values)
			},
			want: &StringDecoder{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.bind()
			require.NoError(t, err)

			got, err := New(tc.term, b)
			require.NoError(t, err)
			require.IsType(t, tc.want, got)
		})
	}
}
