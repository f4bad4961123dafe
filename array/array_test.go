// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/array"
)

func TestPublicAPI(t *testing.T) {
	a, err := array.FromSlice([]float32{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, array.Float32, a.DType())
	assert.Equal(t, []int{8, 4}, a.Strides())

	require.NoError(t, array.SetAt(a, float32(9), 1, 1))
	v, err := array.At[float32](a, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(9), v)

	vals, err := array.Values[float32](a)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 9}, vals)

	_, err = array.At[float64](a, 0, 0)
	assert.ErrorIs(t, err, array.ErrTypeMismatch)

	_, err = array.New(array.Shape{2, 0}, array.Float64)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)

	var opErr *array.OpError
	assert.True(t, errors.As(err, &opErr))
}

func TestPublicDTypes(t *testing.T) {
	dt, err := array.ParseDType("h")
	require.NoError(t, err)
	assert.Equal(t, 1, dt.Size())
	assert.True(t, dt.IsRaw())

	assert.Equal(t, 5, array.DType(5).Size())
	assert.Equal(t, 1, array.DType(0).Size())
	assert.Equal(t, 8, array.Uint64.Size())

	_, err = array.ParseDType("df")
	assert.ErrorIs(t, err, array.ErrInvalidArgument)
}
