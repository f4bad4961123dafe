package cpu

// elementStrides converts byte strides to element strides.
func elementStrides(byteStrides []int, elemSize int) []int {
	strides := make([]int, len(byteStrides))
	for i, s := range byteStrides {
		strides[i] = s / elemSize
	}
	return strides
}

// unravel decomposes a row-major linear element index into per-axis
// coordinates using element strides. coords must have one slot per axis.
func unravel(linear int, strides, coords []int) {
	for i := range strides {
		coords[i] = linear / strides[i]
		linear %= strides[i]
	}
}

// byteOffset maps coordinates to a byte offset using byte strides.
func byteOffset(coords, strides []int) int {
	offset := 0
	for i := range coords {
		offset += coords[i] * strides[i]
	}
	return offset
}
