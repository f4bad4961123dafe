package csvio

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/array"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Commas", "2,3\n1,2,3\n4,5,6\n"},
		{"Whitespace", "2,3\n1 2 3\n4\t5 6"},
		{"Mixed", "2, 3\n1, 2,3 4\n5 ,6\r\n"},
		{"BlankLines", "\n2,3\n\n1,2,3\n\n4,5,6\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Read(strings.NewReader(tt.input), array.Float64)
			require.NoError(t, err)
			assert.Equal(t, array.Shape{2, 3}, a.Shape())
			assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.AsFloat64())
		})
	}
}

func TestRead_DTypes(t *testing.T) {
	input := "1,3\n0.5,-2,1e3\n"

	f32, err := Read(strings.NewReader(input), array.Float32)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -2, 1000}, f32.AsFloat32())

	u, err := Read(strings.NewReader("2,1\n18446744073709551615\n7\n"), array.Uint64)
	require.NoError(t, err)
	assert.Equal(t, []uint64{18446744073709551615, 7}, u.AsUint64())

	_, err = Read(strings.NewReader(input), array.Bool)
	assert.ErrorIs(t, err, array.ErrUnsupportedDType)
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		dtype    array.DType
		wantLine int
	}{
		{"Empty", "", array.Float64, 0},
		{"HeaderOnlyRows", "3", array.Float64, 0},
		{"ZeroRows", "0,3\n", array.Float64, 1},
		{"NegativeCols", "2,-1\n", array.Float64, 1},
		{"NonNumericHeader", "a,b\n", array.Float64, 1},
		{"ShortData", "2,2\n1,2\n3\n", array.Float64, 0},
		{"BadToken", "1,2\n1,x\n", array.Float64, 2},
		{"NegativeUnsigned", "1,1\n-1\n", array.Uint64, 2},
		{"TrailingData", "1,1\n1\n2\n", array.Float64, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.dtype)
			require.ErrorIs(t, err, ErrMalformed)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantLine, pe.Line)
		})
	}
}

// A header never drives allocation by itself: oversized headers fail
// before any buffer is built, and plausible ones fail on missing values.
func TestRead_HugeHeader(t *testing.T) {
	t.Run("OverCap", func(t *testing.T) {
		_, err := Read(strings.NewReader("1000000,1000000\n1\n"), array.Float64)
		assert.ErrorIs(t, err, array.ErrAllocation)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := Read(strings.NewReader("4000000000,4000000000\n1\n"), array.Uint64)
		assert.ErrorIs(t, err, array.ErrOverflow)
	})

	t.Run("UnderCapShortData", func(t *testing.T) {
		_, err := Read(strings.NewReader("50000,50000\n1,2,3\n"), array.Float32)
		require.ErrorIs(t, err, ErrMalformed)
		assert.Contains(t, err.Error(), "expected 2500000000 values, got 3")
	})
}

func TestWrite(t *testing.T) {
	a, err := array.FromSlice([]float64{11, 12, 13, 14.5, 15, 16}, array.Shape{2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, a))
	assert.Equal(t, "2,3\n11,12,13\n14.5,15,16\n", buf.String())

	v, err := array.New(array.Shape{4}, array.Float64)
	require.NoError(t, err)
	assert.ErrorIs(t, Write(&buf, v), array.ErrRank)
}

func TestRoundTrip(t *testing.T) {
	src := array.NewSource(8)
	for _, dt := range []array.DType{array.Float64, array.Float32} {
		t.Run(dt.String(), func(t *testing.T) {
			a, err := array.RandomNormal(5, 4, 0, 1e6, dt, src)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, a))
			b, err := Read(&buf, dt)
			require.NoError(t, err)

			assert.Equal(t, a.Shape(), b.Shape())
			assert.Equal(t, a.Data(), b.Data(), "shortest formatting must round-trip exactly")
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")

	a, err := array.FromSlice([]uint64{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, a))

	var logs bytes.Buffer
	r := NewReader(WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	b, err := r.ReadFile(path, array.Uint64)
	require.NoError(t, err)
	assert.Equal(t, a.AsUint64(), b.AsUint64())
	assert.Contains(t, logs.String(), "csv loaded")

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), array.Float64)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
