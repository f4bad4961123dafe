package cpu

import (
	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
)

// Add performs element-wise addition of equal-shaped arrays.
// dst may be nil, a, b or a separate array of the same layout.
func (cpu *CPUBackend) Add(dst, a, b *array.Array) (*array.Array, error) {
	return cpu.elementwise("add", opAdd, dst, a, b)
}

// Sub performs element-wise subtraction of equal-shaped arrays.
func (cpu *CPUBackend) Sub(dst, a, b *array.Array) (*array.Array, error) {
	return cpu.elementwise("subtract", opSub, dst, a, b)
}

func (cpu *CPUBackend) elementwise(op string, kind binaryOp, dst, a, b *array.Array) (*array.Array, error) {
	if err := checkSameLayout(op, a, b); err != nil {
		return nil, err
	}
	if err := checkNumeric(op, a.DType()); err != nil {
		return nil, err
	}

	result, err := output(op, dst, a.Shape(), a.DType())
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case array.Float64:
		applyBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), kind, cpu.parallel)
	case array.Float32:
		applyBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), kind, cpu.parallel)
	case array.Uint64:
		applyBinary(result.AsUint64(), a.AsUint64(), b.AsUint64(), kind, cpu.parallel)
	}
	return result, nil
}

// applyBinary runs over every element in row-major order; uint64 wraps.
func applyBinary[T number](dst, a, b []T, kind binaryOp, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		switch kind {
		case opAdd:
			for i := start; i < end; i++ {
				dst[i] = a[i] + b[i]
			}
		case opSub:
			for i := start; i < end; i++ {
				dst[i] = a[i] - b[i]
			}
		}
	}, cfg)
}
