package array

// Backend defines the operations a compute backend provides over arrays.
//
// Operations taking dst write into it when non-nil (it must already have
// the result shape and dtype) and allocate a fresh result otherwise.
// Every operation validates its inputs before writing anything.
//
// Implementations:
//   - backend/cpu: pure Go, optionally splitting loops across goroutines
type Backend interface {
	// Element-wise binary operations over equal shapes.
	Add(dst, a, b *Array) (*Array, error)
	Sub(dst, a, b *Array) (*Array, error)

	// Compare returns a Bool array of a <op> b.
	Compare(dst, a, b *Array, op Operator) (*Array, error)

	// Dot performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
	Dot(dst, a, b *Array) (*Array, error)

	// BroadcastAdd adds two 2D arrays zero-padded to their per-axis maximum.
	BroadcastAdd(dst, a, b *Array) (*Array, error)

	// Transforms (always allocate).
	Transpose(a *Array) (*Array, error)
	Subsample(a *Array, n int, src Source) (*Array, error)
	Concat(a, b *Array, axis int) (*Array, error)

	// Metadata
	Name() string
}
