package cpu

import (
	"github.com/born-ml/ndarray/internal/array"
)

// Transpose swaps the rows and columns of a 2D array into a new array.
// Works for every dtype, raw types included.
func (cpu *CPUBackend) Transpose(a *array.Array) (*array.Array, error) {
	if a.NDim() != 2 {
		return nil, array.Errorf("transpose", array.ErrRank, "only 2D arrays supported, got %dD", a.NDim())
	}

	rows, cols := a.Dim(0), a.Dim(1)
	result, err := array.New(array.Shape{cols, rows}, a.DType())
	if err != nil {
		return nil, err
	}

	es := a.ElemSize()
	src, dst := a.Data(), result.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			from := (i*cols + j) * es
			to := (j*rows + i) * es
			copy(dst[to:to+es], src[from:from+es])
		}
	}
	return result, nil
}

// Concat joins a and b along axis into a new array.
//
// Both arrays need the same rank and dtype and equal extents on every axis
// except axis. The result extent on axis is the sum of the two.
//
// Example:
//
//	a: [2, 3], b: [2, 5], axis 1 -> [2, 8]
func (cpu *CPUBackend) Concat(a, b *array.Array, axis int) (*array.Array, error) {
	ndim := a.NDim()
	if b.NDim() != ndim {
		return nil, array.Errorf("concat", array.ErrShapeMismatch, "rank %d vs %d", ndim, b.NDim())
	}
	if axis < 0 || axis >= ndim {
		return nil, array.Errorf("concat", array.ErrAxis, "axis %d for %dD arrays", axis, ndim)
	}
	if a.DType() != b.DType() {
		return nil, array.Errorf("concat", array.ErrDtypeMismatch, "%s vs %s", a.DType(), b.DType())
	}
	for d := 0; d < ndim; d++ {
		if d != axis && a.Dim(d) != b.Dim(d) {
			return nil, array.Errorf("concat", array.ErrShapeMismatch, "axis %d is %d vs %d", d, a.Dim(d), b.Dim(d))
		}
	}

	outShape := a.Shape()
	outShape[axis] += b.Dim(axis)
	result, err := array.New(outShape, a.DType())
	if err != nil {
		return nil, err
	}

	es := result.ElemSize()
	outStrides := elementStrides(result.Strides(), es)
	aStrides, bStrides := a.Strides(), b.Strides()
	aExtent := a.Dim(axis)
	aData, bData, dst := a.Data(), b.Data(), result.Data()

	coords := make([]int, ndim)
	total := result.Size()
	for linear := 0; linear < total; linear++ {
		unravel(linear, outStrides, coords)

		src, strides := aData, aStrides
		if coords[axis] >= aExtent {
			src, strides = bData, bStrides
			coords[axis] -= aExtent
		}

		from := byteOffset(coords, strides)
		copy(dst[linear*es:(linear+1)*es], src[from:from+es])
	}
	return result, nil
}
