// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float64, Float32 and Uint64 arithmetic
//   - Byte-level transpose and concat for every dtype, raw types included
//   - Optional goroutine parallelism over independent output ranges
//
// # Basic Usage
//
//	backend := cpu.New()
//	a, _ := array.FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2})
//	b, _ := array.Eye(2, array.Float64)
//	c, _ := backend.Dot(nil, a, b)
//	mask, _ := backend.Compare(nil, a, c, array.OpEqual)
//
// Every operation takes an optional destination as its first argument.
// Pass nil to allocate the result; otherwise the destination must already
// have the result's shape and dtype.
//
// # Parallelism
//
//	backend := cpu.New(cpu.WithParallel(cpu.DefaultParallel()))
//
// Calls still block until the whole result is written.
package cpu
