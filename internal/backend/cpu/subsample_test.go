package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/array"
)

func TestCPUBackend_Subsample(t *testing.T) {
	backend := newTestBackend()

	// Row i holds i in every column so rows can be identified by value.
	rows := func(t *testing.T, n, cols int) *array.Array {
		a, err := array.New(array.Shape{n, cols}, array.Float64)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < cols; j++ {
				require.NoError(t, array.SetAt(a, float64(i), i, j))
			}
		}
		return a
	}

	t.Run("DistinctRows", func(t *testing.T) {
		a := rows(t, 10, 3)

		result, err := backend.Subsample(a, 4, array.NewSource(1))
		require.NoError(t, err)
		assert.Equal(t, array.Shape{4, 3}, result.Shape())

		seen := map[float64]bool{}
		data := result.AsFloat64()
		for i := 0; i < 4; i++ {
			row := data[i*3 : (i+1)*3]
			assert.Equal(t, row[0], row[1])
			assert.Equal(t, row[0], row[2])
			assert.False(t, seen[row[0]], "row %v drawn twice", row[0])
			seen[row[0]] = true
		}
	})

	t.Run("AllRowsIsPermutation", func(t *testing.T) {
		a := rows(t, 6, 2)

		result, err := backend.Subsample(a, 6, array.NewSource(9))
		require.NoError(t, err)

		var got []float64
		for i := 0; i < 6; i++ {
			got = append(got, result.AsFloat64()[i*2])
		}
		assert.ElementsMatch(t, []float64{0, 1, 2, 3, 4, 5}, got)
	})

	t.Run("SeedDeterminism", func(t *testing.T) {
		a := rows(t, 20, 2)

		first, err := backend.Subsample(a, 5, array.NewSource(123))
		require.NoError(t, err)
		second, err := backend.Subsample(a, 5, array.NewSource(123))
		require.NoError(t, err)
		assert.Equal(t, first.AsFloat64(), second.AsFloat64())
	})

	t.Run("Rank3", func(t *testing.T) {
		a := arange(t, array.Shape{5, 2, 2})

		result, err := backend.Subsample(a, 2, array.NewSource(4))
		require.NoError(t, err)
		assert.Equal(t, array.Shape{2, 2, 2}, result.Shape())
		for i := 0; i < 2; i++ {
			block := result.AsFloat64()[i*4 : (i+1)*4]
			first := block[0]
			assert.Zero(t, int(first)%4)
			assert.Equal(t, []float64{first, first + 1, first + 2, first + 3}, block)
		}
	})

	t.Run("Uint64", func(t *testing.T) {
		a := fromSlice(t, []uint64{7, 8, 9}, array.Shape{3})

		result, err := backend.Subsample(a, 3, array.NewSource(2))
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint64{7, 8, 9}, result.AsUint64())
	})
}

func TestCPUBackend_SubsampleErrors(t *testing.T) {
	backend := newTestBackend()
	a := arange(t, array.Shape{4, 2})
	src := array.NewSource(1)

	_, err := backend.Subsample(a, 5, src)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)

	_, err = backend.Subsample(a, 0, src)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)

	_, err = backend.Subsample(a, 2, nil)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)
}

// TestShuffle checks that every position is reachable for every value.
func TestShuffle(t *testing.T) {
	src := array.NewSource(77)
	const n = 4
	var hits [n][n]int
	for trial := 0; trial < 2000; trial++ {
		perm := shuffle(n, src)
		for pos, v := range perm {
			hits[pos][v]++
		}
	}
	for pos := 0; pos < n; pos++ {
		for v := 0; v < n; v++ {
			assert.Greater(t, hits[pos][v], 350, "value %d at position %d", v, pos)
		}
	}
}
