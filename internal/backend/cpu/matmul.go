package cpu

import (
	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Dot performs matrix multiplication.
// For 2D arrays: (M, K) @ (K, N) -> (M, N).
// Float products are accumulated in float64 and narrowed on write.
// dst must not be one of the operands.
func (cpu *CPUBackend) Dot(dst, a, b *array.Array) (*array.Array, error) {
	if err := checkRank2("dot", a, b); err != nil {
		return nil, err
	}

	m, k := a.Dim(0), a.Dim(1)
	kAlt, n := b.Dim(0), b.Dim(1)
	if k != kAlt {
		return nil, array.Errorf("dot", array.ErrShapeMismatch, "[%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}
	if err := checkNumeric("dot", a.DType()); err != nil {
		return nil, err
	}
	if dst != nil && (dst == a || dst == b) {
		return nil, array.Errorf("dot", array.ErrInvalidArgument, "result aliases an operand")
	}

	result, err := output("dot", dst, array.Shape{m, n}, a.DType())
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case array.Float64:
		matmulFloat(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.parallel)
	case array.Float32:
		matmulFloat(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.parallel)
	case array.Uint64:
		matmulUint64(result.AsUint64(), a.AsUint64(), b.AsUint64(), m, k, n, cpu.parallel)
	}
	return result, nil
}

// matmulFloat computes C[i,j] = sum_k A[i,k] * B[k,j] with a float64
// accumulator. Rows of C are independent.
func matmulFloat[T float32 | float64](c, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += float64(a[i*k+kIdx]) * float64(b[kIdx*n+j])
			}
			c[i*n+j] = T(sum)
		}
	}, cfg)
}

func matmulUint64(c, a, b []uint64, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			var sum uint64
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}, cfg)
}
