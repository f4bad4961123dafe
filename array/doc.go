// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for strided N-dimensional arrays.
//
// An Array is a contiguous row-major byte buffer with a fixed shape, byte
// strides and a single-character dtype tag:
//   - 'd' float64, 'f' float32, 'i' uint64, 'b' bool (comparison results)
//   - any other tag is an opaque raw type of 1 to 7 bytes
//
// Arrays are computed on by a Backend. Every backend operation validates its
// inputs before writing and reports failures as errors that match the Err*
// kinds with errors.Is.
//
// Example:
//
//	backend := cpu.New()
//	a, _ := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	b, _ := array.Full(array.Shape{2, 3}, 10.0)
//	sum, _ := backend.Add(nil, a, b)    // [[11 12 13] [14 15 16]]
//	t, _ := backend.Transpose(sum)      // shape (3,2)
package array
