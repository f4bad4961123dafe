package cpu

import (
	"github.com/born-ml/ndarray/internal/array"
)

// Subsample draws n distinct rows (axis 0) without replacement.
//
// Rows are taken in the order of a Fisher-Yates shuffle of the row indices
// driven by src; every other axis is copied whole.
func (cpu *CPUBackend) Subsample(a *array.Array, n int, src array.Source) (*array.Array, error) {
	if a.NDim() < 1 {
		return nil, array.Errorf("subsample", array.ErrRank, "array has no rows")
	}
	if src == nil {
		return nil, array.Errorf("subsample", array.ErrInvalidArgument, "nil random source")
	}
	rows := a.Dim(0)
	if n < 1 || n > rows {
		return nil, array.Errorf("subsample", array.ErrInvalidArgument, "cannot sample %d of %d rows", n, rows)
	}

	outShape := a.Shape()
	outShape[0] = n
	result, err := array.New(outShape, a.DType())
	if err != nil {
		return nil, err
	}

	perm := shuffle(rows, src)
	rowBytes := a.Strides()[0]
	from, to := a.Data(), result.Data()
	for i := 0; i < n; i++ {
		r := perm[i]
		copy(to[i*rowBytes:(i+1)*rowBytes], from[r*rowBytes:(r+1)*rowBytes])
	}
	return result, nil
}

// shuffle returns a uniform random permutation of [0, n).
func shuffle(n int, src array.Source) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
