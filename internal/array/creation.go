package array

// Zeros creates a zero-filled array.
//
// Example:
//
//	a, err := array.Zeros(array.Shape{2, 3}, array.Float64)
func Zeros(shape Shape, dtype DType) (*Array, error) {
	return New(shape, dtype)
}

// Full creates an array of T filled with value.
func Full[T Element](shape Shape, value T) (*Array, error) {
	a, err := New(shape, DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := view[T](a)
	for i := range data {
		data[i] = value
	}
	return a, nil
}

// FromSlice creates an array from a Go slice laid out in row-major order.
// The slice is copied.
//
// Example:
//
//	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T Element](data []T, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n, err := shape.NumElements()
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, Errorf("from slice", ErrShapeMismatch, "shape %v requires %d elements, got %d", shape, n, len(data))
	}

	a, err := New(shape, DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(view[T](a), data)
	return a, nil
}

// Values returns a row-major copy of the elements as []T.
func Values[T Element](a *Array) ([]T, error) {
	if dt := DTypeOf[T](); dt != a.dtype {
		return nil, Errorf("values", ErrTypeMismatch, "%s values from %s array", dt, a.dtype)
	}
	return append([]T(nil), view[T](a)...), nil
}

// Eye creates an n×n identity matrix of a numeric dtype.
func Eye(n int, dtype DType) (*Array, error) {
	if dtype.IsRaw() {
		return nil, Errorf("eye", ErrUnsupportedDType, "%s", dtype)
	}
	a, err := New(Shape{n, n}, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := a.SetFloat(1, i, i); err != nil {
			return nil, err
		}
	}
	return a, nil
}
