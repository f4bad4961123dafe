// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/ndarray/array"
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all array operations.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// ParallelConfig controls how loops are split across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements array.Backend.
var _ array.Backend = (*Backend)(nil)

// New creates a new CPU backend. It runs single-threaded unless
// WithParallel enables worker goroutines.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/array"
//	    "github.com/born-ml/ndarray/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := array.Zeros(array.Shape{2, 3}, array.Float64)
//	    sum, _ := backend.Add(nil, a, a)
//	}
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// WithParallel splits element and row loops according to cfg.
func WithParallel(cfg ParallelConfig) Option {
	return internalcpu.WithParallel(cfg)
}

// DefaultParallel returns a parallel config sized to the machine.
func DefaultParallel() ParallelConfig {
	return parallel.DefaultConfig()
}
