// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/array"
)

// Type aliases for public API

// Array is a fixed-shape, homogeneously typed, strided buffer.
type Array = array.Array

// Shape lists the extent of each axis.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// DType is the single-character element type tag.
type DType = array.DType

// Element is the constraint for typed element access.
type Element = array.Element

// Operator selects a comparison.
type Operator = array.Operator

// Backend is the set of array operations a compute backend provides.
type Backend = array.Backend

// Source supplies uniform randomness to sampling functions.
type Source = array.Source

// OpError describes a failed operation.
type OpError = array.OpError

// Data type constants.
const (
	Float64 DType = array.Float64
	Float32 DType = array.Float32
	Uint64  DType = array.Uint64
	Bool    DType = array.Bool
)

// Comparison operators.
const (
	OpGreater Operator = array.OpGreater
	OpLess    Operator = array.OpLess
	OpEqual   Operator = array.OpEqual
)

// Error kinds. Test with errors.Is.
var (
	ErrShapeMismatch    = array.ErrShapeMismatch
	ErrDtypeMismatch    = array.ErrDtypeMismatch
	ErrRank             = array.ErrRank
	ErrAxis             = array.ErrAxis
	ErrInvalidOperator  = array.ErrInvalidOperator
	ErrInvalidArgument  = array.ErrInvalidArgument
	ErrAllocation       = array.ErrAllocation
	ErrIndex            = array.ErrIndex
	ErrTypeMismatch     = array.ErrTypeMismatch
	ErrOverflow         = array.ErrOverflow
	ErrUnsupportedDType = array.ErrUnsupportedDType
)

// New allocates a zero-filled array.
func New(shape Shape, dtype DType) (*Array, error) {
	return array.New(shape, dtype)
}

// Zeros is an alias for New.
func Zeros(shape Shape, dtype DType) (*Array, error) {
	return array.Zeros(shape, dtype)
}

// Full creates an array of T filled with value.
func Full[T Element](shape Shape, value T) (*Array, error) {
	return array.Full(shape, value)
}

// FromSlice copies data (row-major) into a new array.
func FromSlice[T Element](data []T, shape Shape) (*Array, error) {
	return array.FromSlice(data, shape)
}

// Values returns a row-major copy of the elements.
func Values[T Element](a *Array) ([]T, error) {
	return array.Values[T](a)
}

// At reads the element at indices.
func At[T Element](a *Array, indices ...int) (T, error) {
	return array.At[T](a, indices...)
}

// SetAt writes value at indices.
func SetAt[T Element](a *Array, value T, indices ...int) error {
	return array.SetAt(a, value, indices...)
}

// Eye creates an n×n identity matrix.
func Eye(n int, dtype DType) (*Array, error) {
	return array.Eye(n, dtype)
}

// ParseDType returns the dtype for a one-character tag.
func ParseDType(tag string) (DType, error) {
	return array.ParseDType(tag)
}

// ParseOperator returns the operator for a one-character code.
func ParseOperator(code string) (Operator, error) {
	return array.ParseOperator(code)
}

// NewSource returns a seeded random source. A negative seed picks one at random.
func NewSource(seed int64) Source {
	return array.NewSource(seed)
}

// RandomNoise fills a rows×cols array with mean ± noiseStd uniform noise.
func RandomNoise(rows, cols int, mean, noiseStd float64, dtype DType, src Source) (*Array, error) {
	return array.RandomNoise(rows, cols, mean, noiseStd, dtype, src)
}

// RandomNormal fills a rows×cols array with N(mean, std²) samples.
func RandomNormal(rows, cols int, mean, std float64, dtype DType, src Source) (*Array, error) {
	return array.RandomNormal(rows, cols, mean, std, dtype, src)
}

// ToDense copies a 2D float array into a gonum matrix.
func ToDense(a *Array) (*mat.Dense, error) {
	return array.ToDense(a)
}

// FromDense copies a gonum matrix into a new 2D float array.
func FromDense(m mat.Matrix, dtype DType) (*Array, error) {
	return array.FromDense(m, dtype)
}
