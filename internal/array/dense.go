package array

import "gonum.org/v1/gonum/mat"

// ToDense copies a rank-2 float array into a gonum dense matrix.
func ToDense(a *Array) (*mat.Dense, error) {
	if a.NDim() != 2 {
		return nil, Errorf("to dense", ErrRank, "expected 2D array, got %dD", a.NDim())
	}

	rows, cols := a.shape[0], a.shape[1]
	switch a.dtype {
	case Float64:
		return mat.NewDense(rows, cols, append([]float64(nil), a.AsFloat64()...)), nil
	case Float32:
		src := a.AsFloat32()
		data := make([]float64, len(src))
		for i, v := range src {
			data[i] = float64(v)
		}
		return mat.NewDense(rows, cols, data), nil
	default:
		return nil, Errorf("to dense", ErrUnsupportedDType, "%s", a.dtype)
	}
}

// FromDense copies any gonum matrix into a new rank-2 float array.
func FromDense(m mat.Matrix, dtype DType) (*Array, error) {
	if !dtype.IsFloat() {
		return nil, Errorf("from dense", ErrUnsupportedDType, "%s", dtype)
	}

	rows, cols := m.Dims()
	a, err := New(Shape{rows, cols}, dtype)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float64:
		data := a.AsFloat64()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				data[i*cols+j] = m.At(i, j)
			}
		}
	case Float32:
		data := a.AsFloat32()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				data[i*cols+j] = float32(m.At(i, j))
			}
		}
	}
	return a, nil
}
