package array

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// MaxBytes caps the byte size of a single array buffer (16 GiB).
// Requests above it fail with ErrAllocation instead of exhausting memory.
const MaxBytes = min(1<<34, math.MaxInt)

// Array is a fixed-shape, row-major, homogeneously-typed buffer.
//
// The buffer, shape and strides are owned together; rank and dtype never
// change after creation.
type Array struct {
	data     []byte // size*elemSize bytes, 8-byte aligned
	shape    Shape  // Per-axis extents
	strides  []int  // Per-axis byte deltas (row-major)
	dtype    DType  // Element type tag
	elemSize int    // dtype.Size(), resolved once
}

// New allocates a zeroed array with the given shape and dtype.
func New(shape Shape, dtype DType) (*Array, error) {
	return newWithLimit(shape, dtype, MaxBytes)
}

// newWithLimit is New with an explicit byte cap.
func newWithLimit(shape Shape, dtype DType, limit int) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	n, err := shape.NumElements()
	if err != nil {
		return nil, err
	}

	elemSize := dtype.Size()
	hi, lo := bits.Mul64(uint64(n), uint64(elemSize)) //nolint:gosec // G115: both positive
	if hi != 0 || lo > math.MaxInt {
		return nil, Errorf("new", ErrOverflow, "%d elements of %d bytes", n, elemSize)
	}
	byteSize := int(lo) //nolint:gosec // G115: checked against MaxInt above
	if byteSize > limit {
		return nil, Errorf("new", ErrAllocation, "%d bytes requested, limit is %d", byteSize, limit)
	}

	return &Array{
		data:     allocate(byteSize),
		shape:    shape.Clone(),
		strides:  shape.Strides(elemSize),
		dtype:    dtype,
		elemSize: elemSize,
	}, nil
}

// allocate returns n zeroed bytes backed by uint64 words, so that typed
// views of any supported width are aligned.
func allocate(n int) []byte {
	words := make([]uint64, (n+7)/8)
	//nolint:gosec // G103: reinterpreting the word buffer as bytes
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's byte strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.strides...)
}

// DType returns the array's data type.
func (a *Array) DType() DType {
	return a.dtype
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Dim returns the extent of one axis.
func (a *Array) Dim(axis int) int {
	return a.shape[axis]
}

// ElemSize returns the element width in bytes.
func (a *Array) ElemSize() int {
	return a.elemSize
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	if a.elemSize == 0 {
		return 0
	}
	return len(a.data) / a.elemSize
}

// ByteSize returns the buffer length in bytes.
func (a *Array) ByteSize() int {
	return len(a.data)
}

// Data returns the raw byte buffer.
// WARNING: Direct access to underlying memory.
func (a *Array) Data() []byte {
	return a.data
}

// Offset returns the byte offset of the element at indices.
// One index per axis is required, each within its extent.
func (a *Array) Offset(indices ...int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, Errorf("offset", ErrIndex, "expected %d indices, got %d", len(a.shape), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return 0, Errorf("offset", ErrIndex, "index %d out of bounds for axis %d (size %d)", idx, i, a.shape[i])
		}
		offset += idx * a.strides[i]
	}
	return offset, nil
}

func (a *Array) ptr(offset int) unsafe.Pointer {
	return unsafe.Pointer(&a.data[offset]) //nolint:gosec // G103: offset is bounds-checked by Offset
}

// Get returns the element at indices as float64, float32, uint64 or bool
// depending on the dtype. Raw dtypes yield a copy of the element bytes.
func (a *Array) Get(indices ...int) (any, error) {
	off, err := a.Offset(indices...)
	if err != nil {
		return nil, err
	}

	switch a.dtype {
	case Float64:
		return *(*float64)(a.ptr(off)), nil
	case Float32:
		return *(*float32)(a.ptr(off)), nil
	case Uint64:
		return *(*uint64)(a.ptr(off)), nil
	case Bool:
		return a.data[off] != 0, nil
	default:
		return append([]byte(nil), a.data[off:off+a.elemSize]...), nil
	}
}

// Set writes value at indices. The Go type of value must match the dtype
// exactly; raw dtypes accept a []byte of the element width.
func (a *Array) Set(value any, indices ...int) error {
	switch v := value.(type) {
	case float64:
		return SetAt(a, v, indices...)
	case float32:
		return SetAt(a, v, indices...)
	case uint64:
		return SetAt(a, v, indices...)
	case bool:
		return SetAt(a, v, indices...)
	case []byte:
		if !a.dtype.IsRaw() {
			return Errorf("set", ErrTypeMismatch, "[]byte value for %s array", a.dtype)
		}
		return a.SetPoint(v, indices...)
	default:
		return Errorf("set", ErrTypeMismatch, "%T value for %s array", value, a.dtype)
	}
}

// At returns the element at indices as T, which must match the dtype.
func At[T Element](a *Array, indices ...int) (T, error) {
	var zero T
	if dt := DTypeOf[T](); dt != a.dtype {
		return zero, Errorf("get", ErrTypeMismatch, "%s value from %s array", dt, a.dtype)
	}
	off, err := a.Offset(indices...)
	if err != nil {
		return zero, err
	}
	return *(*T)(a.ptr(off)), nil
}

// SetAt writes value at indices; T must match the dtype.
func SetAt[T Element](a *Array, value T, indices ...int) error {
	if dt := DTypeOf[T](); dt != a.dtype {
		return Errorf("set", ErrTypeMismatch, "%s value for %s array", dt, a.dtype)
	}
	off, err := a.Offset(indices...)
	if err != nil {
		return err
	}
	*(*T)(a.ptr(off)) = value
	return nil
}

// Float returns the element at indices widened to float64.
func (a *Array) Float(indices ...int) (float64, error) {
	off, err := a.Offset(indices...)
	if err != nil {
		return 0, err
	}

	switch a.dtype {
	case Float64:
		return *(*float64)(a.ptr(off)), nil
	case Float32:
		return float64(*(*float32)(a.ptr(off))), nil
	case Uint64:
		return float64(*(*uint64)(a.ptr(off))), nil
	case Bool:
		if a.data[off] != 0 {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, Errorf("get", ErrUnsupportedDType, "%s has no numeric value", a.dtype)
	}
}

// SetFloat narrows value to the storage dtype and writes it at indices.
func (a *Array) SetFloat(value float64, indices ...int) error {
	if a.dtype == Uint64 && !representableUint64(value) {
		return Errorf("set", ErrInvalidArgument, "%v is not representable as uint64", value)
	}
	if a.dtype.IsRaw() {
		return Errorf("set", ErrUnsupportedDType, "%s has no numeric value", a.dtype)
	}

	off, err := a.Offset(indices...)
	if err != nil {
		return err
	}

	switch a.dtype {
	case Float64:
		*(*float64)(a.ptr(off)) = value
	case Float32:
		*(*float32)(a.ptr(off)) = float32(value)
	case Uint64:
		*(*uint64)(a.ptr(off)) = uint64(value)
	case Bool:
		*(*bool)(a.ptr(off)) = value != 0
	}
	return nil
}

// representableUint64 reports whether v is a whole number in [0, 2^64).
// NaN and the infinities fail the comparisons or the Trunc check.
func representableUint64(v float64) bool {
	return v >= 0 && v < 1<<64 && v == math.Trunc(v)
}

// Point returns a copy of the raw element bytes at indices.
func (a *Array) Point(indices ...int) ([]byte, error) {
	off, err := a.Offset(indices...)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), a.data[off:off+a.elemSize]...), nil
}

// SetPoint copies exactly one element's worth of raw bytes to indices.
func (a *Array) SetPoint(raw []byte, indices ...int) error {
	if len(raw) != a.elemSize {
		return Errorf("set", ErrTypeMismatch, "%d bytes for %d-byte %s element", len(raw), a.elemSize, a.dtype)
	}
	off, err := a.Offset(indices...)
	if err != nil {
		return err
	}
	copy(a.data[off:off+a.elemSize], raw)
	return nil
}

func view[T Element](a *Array) []T {
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // G103: zero-copy typed view, length bounded by Size()
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (a *Array) AsFloat64() []float64 {
	if a.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", a.dtype))
	}
	return view[float64](a)
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (a *Array) AsFloat32() []float32 {
	if a.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", a.dtype))
	}
	return view[float32](a)
}

// AsUint64 interprets the data as []uint64.
// Panics if the array's dtype is not Uint64.
func (a *Array) AsUint64() []uint64 {
	if a.dtype != Uint64 {
		panic(fmt.Sprintf("array dtype is %s, not uint64", a.dtype))
	}
	return view[uint64](a)
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (a *Array) AsBool() []bool {
	if a.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", a.dtype))
	}
	return view[bool](a)
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := allocate(len(a.data))
	copy(data, a.data)
	return &Array{
		data:     data,
		shape:    a.shape.Clone(),
		strides:  append([]int(nil), a.strides...),
		dtype:    a.dtype,
		elemSize: a.elemSize,
	}
}

// Release drops the buffer, shape and strides together.
// The array must not be used afterwards.
func (a *Array) Release() {
	a.data = nil
	a.shape = nil
	a.strides = nil
}

// String returns a short description, e.g. "Array[float64](2,3)".
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}
