package array

import (
	"math"
	"math/rand"
)

// Source supplies the randomness used for sampling.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// Intn returns a uniform sample in [0, n).
	Intn(n int) int
}

// NewSource returns a generator seeded once with seed.
// A negative seed selects a random seed.
func NewSource(seed int64) *rand.Rand {
	if seed < 0 {
		seed = rand.Int63() //nolint:gosec // User requested random seed
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic sampling for reproducibility
}

// RandomNoise creates a rows×cols array of mean plus uniform noise in
// [-noiseStd, noiseStd).
func RandomNoise(rows, cols int, mean, noiseStd float64, dtype DType, src Source) (*Array, error) {
	return sample("random noise", rows, cols, dtype, src, func() float64 {
		return mean + src.Float64()*noiseStd*2 - noiseStd
	})
}

// RandomNormal creates a rows×cols array drawn from N(mean, std²) using the
// Box-Muller transform.
func RandomNormal(rows, cols int, mean, std float64, dtype DType, src Source) (*Array, error) {
	return sample("random normal", rows, cols, dtype, src, func() float64 {
		u1 := src.Float64()
		for u1 == 0 {
			u1 = src.Float64()
		}
		u2 := src.Float64()
		z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		return mean + std*z
	})
}

func sample(op string, rows, cols int, dtype DType, src Source, draw func() float64) (*Array, error) {
	if src == nil {
		return nil, Errorf(op, ErrInvalidArgument, "nil random source")
	}
	if !dtype.IsFloat() {
		return nil, Errorf(op, ErrUnsupportedDType, "%s (float64 or float32 required)", dtype)
	}

	a, err := New(Shape{rows, cols}, dtype)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float64:
		data := a.AsFloat64()
		for i := range data {
			data[i] = draw()
		}
	case Float32:
		data := a.AsFloat32()
		for i := range data {
			data[i] = float32(draw())
		}
	}
	return a, nil
}
