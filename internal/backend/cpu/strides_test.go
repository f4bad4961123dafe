package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/ndarray/internal/array"
)

func TestUnravel(t *testing.T) {
	shape := array.Shape{2, 3, 4}
	byteStrides := shape.Strides(8)
	strides := elementStrides(byteStrides, 8)
	assert.Equal(t, []int{12, 4, 1}, strides)

	coords := make([]int, 3)
	for linear := 0; linear < 24; linear++ {
		unravel(linear, strides, coords)
		assert.Equal(t, linear*8, byteOffset(coords, byteStrides), "linear %d", linear)
	}

	unravel(23, strides, coords)
	assert.Equal(t, []int{1, 2, 3}, coords)
}
