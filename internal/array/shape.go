package array

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Shape represents the per-axis extents of an array.
type Shape []int

// NumElements returns the product of all extents (1 for rank 0).
// It fails with ErrOverflow if the product does not fit in an int.
func (s Shape) NumElements() (int, error) {
	n := uint64(1)
	for _, dim := range s {
		hi, lo := bits.Mul64(n, uint64(dim)) //nolint:gosec // G115: dims are validated positive
		if hi != 0 || lo > math.MaxInt {
			return 0, Errorf("shape", ErrOverflow, "element count of %v", s)
		}
		n = lo
	}
	return int(n), nil //nolint:gosec // G115: checked against MaxInt above
}

// Validate checks that every extent is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return Errorf("shape", ErrInvalidArgument, "dimension %d is %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Strides computes row-major byte strides for elements of elemSize bytes.
// The last axis advances by elemSize; axis i by strides[i+1]*s[i+1].
func (s Shape) Strides(elemSize int) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = elemSize
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as a tuple, e.g. "(2,3,4)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
