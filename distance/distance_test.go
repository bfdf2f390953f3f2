package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected []float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{-1.224744871, 0, 1.224744871}},
		{"Constant", []float64{5, 5, 5, 5}, []float64{0, 0, 0, 0}},
		{"SingleSample", []float64{42}, []float64{0}},
		{"Empty", []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZNormalize(tt.input)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], got[i], 1e-9)
			}
		})
	}

	t.Run("ZeroMeanUnitVariance", func(t *testing.T) {
		got := ZNormalize([]float64{3, 1, 4, 1, 5, 9, 2, 6})

		var sum float64
		for _, v := range got {
			sum += v
		}
		assert.InDelta(t, 0, sum/float64(len(got)), 1e-12)

		var sq float64
		for _, v := range got {
			sq += v * v
		}
		assert.InDelta(t, 1, math.Sqrt(sq/float64(len(got))), 1e-12)
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := ZNormalize([]float64{3, 1, 4, 1, 5, 9, 2, 6})
		twice := ZNormalize(once)
		for i := range once {
			assert.InDelta(t, once[i], twice[i], 1e-12)
		}
	})

	t.Run("IntoAliasing", func(t *testing.T) {
		v := []float64{1, 2, 3}
		ZNormalizeInto(v, v)
		assert.InDelta(t, -1.224744871, v[0], 1e-9)
		assert.InDelta(t, 0, v[1], 1e-9)
		assert.InDelta(t, 1.224744871, v[2], 1e-9)
	})
}

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, math.Sqrt(27)},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, math.Sqrt(8)},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEuclideanEarlyAbandon(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	t.Run("InfCutoffMatchesExact", func(t *testing.T) {
		got, ok := EuclideanEarlyAbandon(a, b, math.Inf(1))
		assert.True(t, ok)
		assert.InDelta(t, Euclidean(a, b), got, 1e-12)
	})

	t.Run("CutoffAboveDistance", func(t *testing.T) {
		got, ok := EuclideanEarlyAbandon(a, b, 10)
		assert.True(t, ok)
		assert.InDelta(t, math.Sqrt(27), got, 1e-12)
	})

	t.Run("CutoffBelowDistance", func(t *testing.T) {
		got, ok := EuclideanEarlyAbandon(a, b, 1)
		assert.False(t, ok)
		// The partial value is a lower bound on the true distance and has
		// already crossed the cutoff.
		assert.GreaterOrEqual(t, got, 1.0)
		assert.LessOrEqual(t, got, math.Sqrt(27))
	})

	t.Run("IdenticalBelowCutoff", func(t *testing.T) {
		got, ok := EuclideanEarlyAbandon(a, a, 5)
		assert.True(t, ok)
		assert.Equal(t, 0.0, got)
	})
}
