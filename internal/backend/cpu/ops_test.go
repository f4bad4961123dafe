package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/ndarray/internal/array"
)

func TestCPUBackend_Add(t *testing.T) {
	backend := newTestBackend()

	t.Run("Float32", func(t *testing.T) {
		a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
		b := fromSlice(t, []float32{10, 11, 12, 13, 14, 15}, array.Shape{2, 3})

		result, err := backend.Add(nil, a, b)
		require.NoError(t, err)
		assert.Equal(t, []float32{11, 13, 15, 17, 19, 21}, result.AsFloat32())
	})

	// Elementwise ops cover every element, not only the first two axes.
	t.Run("Rank3", func(t *testing.T) {
		a := arange(t, array.Shape{2, 3, 4})
		b := arange(t, array.Shape{2, 3, 4})

		result, err := backend.Add(nil, a, b)
		require.NoError(t, err)
		for i, v := range result.AsFloat64() {
			require.Equal(t, float64(2*i), v, "element %d", i)
		}
	})

	t.Run("IntoDst", func(t *testing.T) {
		a := fromSlice(t, []float64{1, 2}, array.Shape{1, 2})
		b := fromSlice(t, []float64{3, 4}, array.Shape{1, 2})
		dst, err := array.New(array.Shape{1, 2}, array.Float64)
		require.NoError(t, err)

		result, err := backend.Add(dst, a, b)
		require.NoError(t, err)
		assert.Same(t, dst, result)
		assert.Equal(t, []float64{4, 6}, dst.AsFloat64())
	})

	t.Run("InplaceIntoOperand", func(t *testing.T) {
		a := fromSlice(t, []float64{1, 2, 3}, array.Shape{3})
		b := fromSlice(t, []float64{10, 20, 30}, array.Shape{3})

		result, err := backend.Add(a, a, b)
		require.NoError(t, err)
		assert.Same(t, a, result)
		assert.Equal(t, []float64{11, 22, 33}, a.AsFloat64())
	})
}

func TestCPUBackend_Sub(t *testing.T) {
	backend := newTestBackend()

	a := fromSlice(t, []float32{10, 20, 30}, array.Shape{3})
	b := fromSlice(t, []float32{1, 2, 3}, array.Shape{3})

	result, err := backend.Sub(nil, a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 18, 27}, result.AsFloat32())
}

// TestCPUBackend_AddSubInverse checks sub(add(a, b), b) == a.
func TestCPUBackend_AddSubInverse(t *testing.T) {
	backend := newTestBackend()
	src := array.NewSource(11)

	t.Run("Float64", func(t *testing.T) {
		a, err := array.RandomNormal(6, 7, 0, 100, array.Float64, src)
		require.NoError(t, err)
		b, err := array.RandomNormal(6, 7, 0, 100, array.Float64, src)
		require.NoError(t, err)

		sum, err := backend.Add(nil, a, b)
		require.NoError(t, err)
		back, err := backend.Sub(nil, sum, b)
		require.NoError(t, err)
		assert.True(t, floats.EqualApprox(a.AsFloat64(), back.AsFloat64(), 1e-9))
	})

	t.Run("Float32", func(t *testing.T) {
		a, err := array.RandomNoise(5, 5, 0, 10, array.Float32, src)
		require.NoError(t, err)
		b, err := array.RandomNoise(5, 5, 0, 10, array.Float32, src)
		require.NoError(t, err)

		sum, err := backend.Add(nil, a, b)
		require.NoError(t, err)
		back, err := backend.Sub(nil, sum, b)
		require.NoError(t, err)
		assert.InDeltaSlice(t, a.AsFloat32(), back.AsFloat32(), 1e-5)
	})

	t.Run("Uint64Exact", func(t *testing.T) {
		a := fromSlice(t, []uint64{0, 1, 1 << 63, ^uint64(0)}, array.Shape{2, 2})
		b := fromSlice(t, []uint64{5, ^uint64(0), 1 << 63, 1}, array.Shape{2, 2})

		sum, err := backend.Add(nil, a, b)
		require.NoError(t, err)
		back, err := backend.Sub(nil, sum, b)
		require.NoError(t, err)
		assert.Equal(t, a.AsUint64(), back.AsUint64())
	})
}

func TestCPUBackend_ElementwiseErrors(t *testing.T) {
	backend := newTestBackend()

	a := arange(t, array.Shape{2, 3})
	tests := []struct {
		name string
		b    func() *array.Array
		dst  func() *array.Array
		want error
	}{
		{
			name: "RankMismatch",
			b:    func() *array.Array { return arange(t, array.Shape{6}) },
			want: array.ErrShapeMismatch,
		},
		{
			name: "ExtentMismatch",
			b:    func() *array.Array { return arange(t, array.Shape{3, 2}) },
			want: array.ErrShapeMismatch,
		},
		{
			name: "DtypeMismatch",
			b:    func() *array.Array { return fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3}) },
			want: array.ErrDtypeMismatch,
		},
		{
			name: "DstShape",
			b:    func() *array.Array { return arange(t, array.Shape{2, 3}) },
			dst:  func() *array.Array { return arange(t, array.Shape{3, 2}) },
			want: array.ErrShapeMismatch,
		},
		{
			name: "DstDtype",
			b:    func() *array.Array { return arange(t, array.Shape{2, 3}) },
			dst: func() *array.Array {
				d, _ := array.New(array.Shape{2, 3}, array.Float32)
				return d
			},
			want: array.ErrDtypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst *array.Array
			if tt.dst != nil {
				dst = tt.dst()
			}
			_, err := backend.Add(dst, a, tt.b())
			assert.ErrorIs(t, err, tt.want)
			_, err = backend.Sub(dst, a, tt.b())
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("UnsupportedDType", func(t *testing.T) {
		x, _ := array.New(array.Shape{2}, array.Bool)
		_, err := backend.Add(nil, x, x)
		assert.ErrorIs(t, err, array.ErrUnsupportedDType)

		raw, _ := array.New(array.Shape{2}, array.DType('z'))
		_, err = backend.Sub(nil, raw, raw)
		assert.ErrorIs(t, err, array.ErrUnsupportedDType)
	})

	t.Run("NoPartialWrite", func(t *testing.T) {
		dst := fromSlice(t, []float32{7, 7, 7, 7, 7, 7}, array.Shape{2, 3})
		_, err := backend.Add(dst, a, a)
		require.ErrorIs(t, err, array.ErrDtypeMismatch)
		assert.Equal(t, []float32{7, 7, 7, 7, 7, 7}, dst.AsFloat32())
	})
}
