package array

import (
	"errors"
	"fmt"
)

// Error kinds reported by array construction and by every engine.
// Use errors.Is to test for a kind; concrete errors are *OpError values.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrDtypeMismatch    = errors.New("dtype mismatch")
	ErrRank             = errors.New("unsupported rank")
	ErrAxis             = errors.New("axis out of range")
	ErrInvalidOperator  = errors.New("invalid comparison operator")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAllocation       = errors.New("allocation failed")
	ErrIndex            = errors.New("index out of range")
	ErrTypeMismatch     = errors.New("value type does not match dtype")
	ErrOverflow         = errors.New("size overflows addressable range")
	ErrUnsupportedDType = errors.New("unsupported dtype")
)

// OpError describes a failed operation.
type OpError struct {
	Op     string // Operation name (e.g. "add", "concat")
	Err    error  // One of the Err* kinds above
	Detail string // Additional details
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

// Unwrap returns the error kind.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Errorf builds an *OpError for op with a formatted detail message.
func Errorf(op string, kind error, format string, args ...any) error {
	return &OpError{Op: op, Err: kind, Detail: fmt.Sprintf(format, args...)}
}
