// Package array provides the strided N-dimensional array container,
// its shape/stride calculator and element types.
package array

import "fmt"

// DType is the single-character tag selecting element width and
// interpretation. Its value is the tag itself.
type DType byte

// Recognized data types.
const (
	Float64 DType = 'd'
	Float32 DType = 'f'
	Uint64  DType = 'i'
	Bool    DType = 'b' // comparison results
)

// Element is a constraint for Go types with a first-class dtype.
type Element interface {
	float64 | float32 | uint64 | bool
}

// ParseDType returns the dtype for a one-character tag.
func ParseDType(tag string) (DType, error) {
	if len(tag) != 1 {
		return 0, Errorf("dtype", ErrInvalidArgument, "tag %q must be exactly one character", tag)
	}
	return DType(tag[0]), nil
}

// Size returns the element width in bytes.
//
// Unrecognized tags are legacy raw types sized by their ordinal value,
// capped below 8 bytes and never smaller than 1.
func (dt DType) Size() int {
	switch dt {
	case Float64, Uint64:
		return 8
	case Float32:
		return 4
	case Bool:
		return 1
	default:
		if dt > 0 && dt < 8 {
			return int(dt)
		}
		return 1
	}
}

// IsFloat reports whether dt is a floating-point type.
func (dt DType) IsFloat() bool {
	return dt == Float64 || dt == Float32
}

// IsRaw reports whether dt is a legacy raw byte type.
func (dt DType) IsRaw() bool {
	switch dt {
	case Float64, Float32, Uint64, Bool:
		return false
	default:
		return true
	}
}

// String returns a human-readable name for the data type.
func (dt DType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Uint64:
		return "uint64"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("raw%d(%q)", dt.Size(), byte(dt))
	}
}

// DTypeOf returns the dtype matching the Go type T.
func DTypeOf[T Element]() DType {
	var dummy T
	switch any(dummy).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case uint64:
		return Uint64
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}
