package cpu

import (
	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Compare returns a Bool array holding a <op> b element-wise.
// dst, when given, must be a Bool array of the operands' shape.
func (cpu *CPUBackend) Compare(dst, a, b *array.Array, op array.Operator) (*array.Array, error) {
	if !op.Valid() {
		return nil, array.Errorf("compare", array.ErrInvalidOperator, "%q", byte(op))
	}
	if err := checkSameLayout("compare", a, b); err != nil {
		return nil, err
	}
	if err := checkNumeric("compare", a.DType()); err != nil {
		return nil, err
	}

	result, err := output("compare", dst, a.Shape(), array.Bool)
	if err != nil {
		return nil, err
	}

	out := result.AsBool()
	switch a.DType() {
	case array.Float64:
		compareSlices(out, a.AsFloat64(), b.AsFloat64(), op, cpu.parallel)
	case array.Float32:
		compareSlices(out, a.AsFloat32(), b.AsFloat32(), op, cpu.parallel)
	case array.Uint64:
		compareSlices(out, a.AsUint64(), b.AsUint64(), op, cpu.parallel)
	}
	return result, nil
}

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *array.Array) (*array.Array, error) {
	return cpu.Compare(nil, a, b, array.OpGreater)
}

// Less returns a < b element-wise.
func (cpu *CPUBackend) Less(a, b *array.Array) (*array.Array, error) {
	return cpu.Compare(nil, a, b, array.OpLess)
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *array.Array) (*array.Array, error) {
	return cpu.Compare(nil, a, b, array.OpEqual)
}

func compareSlices[T number](dst []bool, a, b []T, op array.Operator, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		switch op {
		case array.OpGreater:
			for i := start; i < end; i++ {
				dst[i] = a[i] > b[i]
			}
		case array.OpLess:
			for i := start; i < end; i++ {
				dst[i] = a[i] < b[i]
			}
		case array.OpEqual:
			for i := start; i < end; i++ {
				dst[i] = a[i] == b[i]
			}
		}
	}, cfg)
}
