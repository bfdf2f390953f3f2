package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.RandomWalk(64, 0.5)

	rng.Reset()
	v2 := rng.RandomWalk(64, 0.5)

	assert.Equal(t, v1, v2)
}

func TestSine(t *testing.T) {
	values := Sine(100, 25, 2)

	assert.Len(t, values, 100)
	assert.InDelta(t, 0.0, values[0], 1e-12)
	assert.InDelta(t, 2.0, values[6], 0.1)

	// One full period returns close to the start.
	assert.InDelta(t, values[0], values[25], 1e-9)
}

func TestScaleRange(t *testing.T) {
	values := Constant(10, 2)
	ScaleRange(values, 3, 6, 0.5)

	assert.Equal(t, []float64{2, 2, 2, 1, 1, 1, 2, 2, 2, 2}, values)
}

func TestNaiveDiscord(t *testing.T) {
	t.Run("Spike", func(t *testing.T) {
		// The farthest-from-its-neighbors window covers the spike; the
		// first of the three covering windows wins the tie.
		values := Spike(12, 4, 10)

		pos, dist, ok := NaiveDiscord(values, 3)
		require.True(t, ok)
		assert.Equal(t, 2, pos)
		assert.InDelta(t, math.Sqrt(3), dist, 1e-9)
	})

	t.Run("Constant", func(t *testing.T) {
		pos, dist, ok := NaiveDiscord(Constant(40, 1), 4)
		require.True(t, ok)
		assert.Equal(t, 0, pos)
		assert.InDelta(t, 0.0, dist, 1e-12)
	})

	t.Run("TooShort", func(t *testing.T) {
		_, _, ok := NaiveDiscord(make([]float64, 9), 5)
		assert.False(t, ok)
	})
}
