package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/hotsax/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a standard-normal pseudo-random number.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// RandomWalk generates a series that takes uniform steps in
// [-step, step) from the previous sample.
func (r *RNG) RandomWalk(n int, step float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]float64, n)

	var level float64
	for i := range values {
		level += (r.rand.Float64()*2 - 1) * step
		values[i] = level
	}

	return values
}

// NoisySine generates a sine wave with additive Gaussian noise.
func (r *RNG) NoisySine(n int, period, amplitude, noise float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]float64, n)
	for i := range values {
		values[i] = amplitude*math.Sin(2*math.Pi*float64(i)/period) + r.rand.NormFloat64()*noise
	}

	return values
}

// Sine generates a clean sine wave with the given period and amplitude.
func Sine(n int, period, amplitude float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = amplitude * math.Sin(2*math.Pi*float64(i)/period)
	}

	return values
}

// Constant generates a series where every sample is v.
func Constant(n int, v float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}

	return values
}

// Spike generates a flat series with a single spike of the given
// height at position pos.
func Spike(n, pos int, height float64) []float64 {
	values := make([]float64, n)
	values[pos] = height

	return values
}

// ScaleRange multiplies values[start:end] by factor in place. Damping
// a stretch of an otherwise regular series plants an anomaly there.
func ScaleRange(values []float64, start, end int, factor float64) {
	for i := start; i < end; i++ {
		values[i] *= factor
	}
}

// NaiveDiscord computes the exact discord by the quadratic scan: every
// window against every non-overlapping window, no pruning. It returns
// ok=false when the series cannot hold two non-overlapping windows.
func NaiveDiscord(values []float64, windowSize int) (int, float64, bool) {
	if windowSize < 1 || len(values) < 2*windowSize {
		return 0, 0, false
	}

	numWindows := len(values) - windowSize + 1

	bestPos := -1
	bestDist := math.Inf(-1)

	for p := 0; p < numWindows; p++ {
		pw := distance.ZNormalize(values[p : p+windowSize])

		nearest := math.Inf(1)
		for q := 0; q < numWindows; q++ {
			if abs(p-q) < windowSize {
				continue
			}

			qw := distance.ZNormalize(values[q : q+windowSize])
			if d := distance.Euclidean(pw, qw); d < nearest {
				nearest = d
			}
		}

		if !math.IsInf(nearest, 1) && nearest > bestDist {
			bestPos = p
			bestDist = nearest
		}
	}

	if bestPos < 0 {
		return 0, 0, false
	}

	return bestPos, bestDist, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
