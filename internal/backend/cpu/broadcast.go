package cpu

import (
	"github.com/born-ml/ndarray/internal/array"
)

// BroadcastAdd adds two 2D arrays of possibly different shapes.
//
// The result has the per-axis maximum shape; positions outside an operand
// read as zero. This is zero padding, not NumPy-style broadcasting:
// singleton axes are not stretched.
//
// Example:
//
//	a: [2, 3], b: [3, 1] -> result [3, 3]
//	result[2, 2] = 0 + 0, result[2, 0] = 0 + b[2, 0]
func (cpu *CPUBackend) BroadcastAdd(dst, a, b *array.Array) (*array.Array, error) {
	if err := checkRank2("broadcast add", a, b); err != nil {
		return nil, err
	}
	if err := checkNumeric("broadcast add", a.DType()); err != nil {
		return nil, err
	}

	aShape, bShape := a.Shape(), b.Shape()
	outShape := array.Shape{max(aShape[0], bShape[0]), max(aShape[1], bShape[1])}

	result, err := output("broadcast add", dst, outShape, a.DType())
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case array.Float64:
		broadcastAdd(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), aShape, bShape, outShape, addViaFloat64[float64])
	case array.Float32:
		broadcastAdd(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), aShape, bShape, outShape, addViaFloat64[float32])
	case array.Uint64:
		broadcastAdd(result.AsUint64(), a.AsUint64(), b.AsUint64(), aShape, bShape, outShape, addNative[uint64])
	}
	return result, nil
}

// addViaFloat64 sums in double precision before narrowing to T.
func addViaFloat64[T float32 | float64](x, y T) T {
	return T(float64(x) + float64(y))
}

func addNative[T number](x, y T) T {
	return x + y
}

// broadcastAdd writes dst row-major. Each output element depends only on
// the same (i, j) of each operand, so dst may alias an operand that already
// has the output shape.
func broadcastAdd[T number](dst, a, b []T, aShape, bShape, outShape array.Shape, add func(x, y T) T) {
	rows, cols := outShape[0], outShape[1]
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var va, vb T
			if i < aShape[0] && j < aShape[1] {
				va = a[i*aShape[1]+j]
			}
			if i < bShape[0] && j < bShape[1] {
				vb = b[i*bShape[1]+j]
			}
			dst[i*cols+j] = add(va, vb)
		}
	}
}
