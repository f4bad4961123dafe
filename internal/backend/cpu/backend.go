// Package cpu implements the array engines on the CPU in pure Go.
package cpu

import (
	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

// CPUBackend implements array operations on the CPU.
// It holds only immutable options and is safe for concurrent use on
// distinct arrays.
type CPUBackend struct {
	parallel parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithParallel splits element and row loops across goroutines as cfg allows.
func WithParallel(cfg parallel.Config) Option {
	return func(cpu *CPUBackend) {
		cpu.parallel = cfg
	}
}

// New creates a new CPU backend. Loops run sequentially unless
// WithParallel is given.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		parallel: parallel.Sequential(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Parallel returns the loop-splitting configuration.
func (cpu *CPUBackend) Parallel() parallel.Config {
	return cpu.parallel
}

// number covers the dtypes with arithmetic.
type number interface {
	float64 | float32 | uint64
}

// checkSameLayout requires equal rank, dtype and extents.
func checkSameLayout(op string, a, b *array.Array) error {
	if a.NDim() != b.NDim() {
		return array.Errorf(op, array.ErrShapeMismatch, "rank %d vs %d", a.NDim(), b.NDim())
	}
	if a.DType() != b.DType() {
		return array.Errorf(op, array.ErrDtypeMismatch, "%s vs %s", a.DType(), b.DType())
	}
	for i := 0; i < a.NDim(); i++ {
		if a.Dim(i) != b.Dim(i) {
			return array.Errorf(op, array.ErrShapeMismatch, "%v vs %v (axis %d)", a.Shape(), b.Shape(), i)
		}
	}
	return nil
}

// checkRank2 requires both operands to be matrices of the same dtype.
func checkRank2(op string, a, b *array.Array) error {
	if a.NDim() != 2 || b.NDim() != 2 {
		return array.Errorf(op, array.ErrRank, "only 2D arrays supported, got %dD and %dD", a.NDim(), b.NDim())
	}
	if a.DType() != b.DType() {
		return array.Errorf(op, array.ErrDtypeMismatch, "%s vs %s", a.DType(), b.DType())
	}
	return nil
}

// checkNumeric rejects dtypes without arithmetic.
func checkNumeric(op string, dtype array.DType) error {
	switch dtype {
	case array.Float64, array.Float32, array.Uint64:
		return nil
	default:
		return array.Errorf(op, array.ErrUnsupportedDType, "%s", dtype)
	}
}

// output returns dst after checking it against the result layout, or a
// freshly allocated result when dst is nil.
func output(op string, dst *array.Array, shape array.Shape, dtype array.DType) (*array.Array, error) {
	if dst == nil {
		return array.New(shape, dtype)
	}
	if dst.DType() != dtype {
		return nil, array.Errorf(op, array.ErrDtypeMismatch, "result is %s, want %s", dst.DType(), dtype)
	}
	if !dst.Shape().Equal(shape) {
		return nil, array.Errorf(op, array.ErrShapeMismatch, "result is %v, want %v", dst.Shape(), shape)
	}
	return dst, nil
}
