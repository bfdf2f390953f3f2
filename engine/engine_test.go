package engine

import (
	"context"
	"math"
	"testing"

	"github.com/hupe1980/hotsax/index"
	"github.com/hupe1980/hotsax/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPtr(seed int64) *int64 {
	return &seed
}

func heuristicSource(t *testing.T, values []float64, windowSize int) index.Source {
	t.Helper()

	src, err := index.New(values, func(o *index.Options) {
		o.WindowSize = windowSize
	})
	require.NoError(t, err)

	return src
}

func TestSearchSpike(t *testing.T) {
	// Three windows cover the spike and tie on the distance to the
	// flat windows; the first one in outer order wins.
	values := testutil.Spike(12, 4, 10)

	t.Run("Heuristic", func(t *testing.T) {
		e, err := New(values, 3, func(o *Options) {
			o.RandomSeed = seedPtr(42)
		})
		require.NoError(t, err)

		result, stats, err := e.Search(context.Background(), heuristicSource(t, values, 3))
		require.NoError(t, err)

		assert.Equal(t, 2, result.Position)
		assert.InDelta(t, math.Sqrt(3), result.Distance, 1e-9)
		assert.Equal(t, int64(10), stats.Candidates)
		assert.Greater(t, stats.DistanceCalls, int64(0))
	})

	t.Run("BruteForce", func(t *testing.T) {
		e, err := New(values, 3)
		require.NoError(t, err)

		result, _, err := e.Search(context.Background(), index.Sequential(10))
		require.NoError(t, err)

		assert.Equal(t, 2, result.Position)
		assert.InDelta(t, math.Sqrt(3), result.Distance, 1e-9)
	})

	t.Run("Squeezed", func(t *testing.T) {
		src, err := index.NewSqueezed(values, func(o *index.Options) {
			o.WindowSize = 3
			o.MergeThreshold = 0.3
		})
		require.NoError(t, err)

		e, err := New(values, 3, func(o *Options) {
			o.RandomSeed = seedPtr(42)
		})
		require.NoError(t, err)

		result, _, err := e.Search(context.Background(), src)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Position)
		assert.InDelta(t, math.Sqrt(3), result.Distance, 1e-9)
	})
}

func TestSearchMatchesNaive(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		rng := testutil.NewRNG(seed)
		values := rng.RandomWalk(160, 0.5)

		wantPos, wantDist, ok := testutil.NaiveDiscord(values, 8)
		require.True(t, ok)

		e, err := New(values, 8, func(o *Options) {
			o.RandomSeed = seedPtr(seed)
		})
		require.NoError(t, err)

		t.Run("Heuristic", func(t *testing.T) {
			result, _, err := e.Search(context.Background(), heuristicSource(t, values, 8))
			require.NoError(t, err)

			assert.Equal(t, wantPos, result.Position)
			assert.InDelta(t, wantDist, result.Distance, 1e-9)
		})

		t.Run("BruteForce", func(t *testing.T) {
			result, _, err := e.Search(context.Background(), index.Sequential(len(values)-8+1))
			require.NoError(t, err)

			assert.Equal(t, wantPos, result.Position)
			assert.InDelta(t, wantDist, result.Distance, 1e-9)
		})
	}
}

func TestSearchSeedIndependentResult(t *testing.T) {
	rng := testutil.NewRNG(3)
	values := rng.RandomWalk(200, 0.5)
	src := heuristicSource(t, values, 10)

	var positions []int
	var distances []float64

	// The shuffle seed moves work around but never the answer.
	for _, seed := range []int64{0, 1, 99} {
		e, err := New(values, 10, func(o *Options) {
			o.RandomSeed = seedPtr(seed)
		})
		require.NoError(t, err)

		result, _, err := e.Search(context.Background(), src)
		require.NoError(t, err)

		positions = append(positions, result.Position)
		distances = append(distances, result.Distance)
	}

	assert.Equal(t, positions[0], positions[1])
	assert.Equal(t, positions[0], positions[2])
	assert.InDelta(t, distances[0], distances[1], 1e-12)
	assert.InDelta(t, distances[0], distances[2], 1e-12)
}

func TestSearchSeedDeterministicStats(t *testing.T) {
	rng := testutil.NewRNG(5)
	values := rng.RandomWalk(160, 0.5)
	src := heuristicSource(t, values, 8)

	run := func() (Result, Stats) {
		e, err := New(values, 8, func(o *Options) {
			o.RandomSeed = seedPtr(42)
		})
		require.NoError(t, err)

		result, stats, err := e.Search(context.Background(), src)
		require.NoError(t, err)

		return result, stats
	}

	r1, s1 := run()
	r2, s2 := run()

	assert.Equal(t, r1, r2)
	assert.Equal(t, s1, s2)
}

func TestSearchParallel(t *testing.T) {
	rng := testutil.NewRNG(11)
	values := rng.RandomWalk(300, 0.5)
	src := heuristicSource(t, values, 10)

	sequential, err := New(values, 10, func(o *Options) {
		o.RandomSeed = seedPtr(42)
	})
	require.NoError(t, err)

	wantResult, _, err := sequential.Search(context.Background(), src)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		parallel, err := New(values, 10, func(o *Options) {
			o.RandomSeed = seedPtr(42)
			o.Workers = workers
		})
		require.NoError(t, err)

		result, _, err := parallel.Search(context.Background(), src)
		require.NoError(t, err)

		assert.Equal(t, wantResult.Position, result.Position)
		assert.InDelta(t, wantResult.Distance, result.Distance, 1e-12)
	}
}

func TestSearchInsufficientData(t *testing.T) {
	values := make([]float64, 9)

	e, err := New(values, 5)
	require.NoError(t, err)

	_, _, err = e.Search(context.Background(), index.Sequential(5))
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestSearchTwoWindowBoundary(t *testing.T) {
	// len == 2n: only the outermost positions have an admissible
	// neighbor. Candidates without one must never win, and the tie
	// between positions 0 and 5 falls to whichever comes first in the
	// mode's outer order.
	values := []float64{0, 1, 2, 3, 4, 9, 9, 9, 9, 9}

	t.Run("BruteForce", func(t *testing.T) {
		e, err := New(values, 5)
		require.NoError(t, err)

		result, _, err := e.Search(context.Background(), index.Sequential(6))
		require.NoError(t, err)

		assert.Equal(t, 0, result.Position)
		assert.InDelta(t, math.Sqrt(5), result.Distance, 1e-9)
	})

	t.Run("Heuristic", func(t *testing.T) {
		e, err := New(values, 5, func(o *Options) {
			o.RandomSeed = seedPtr(42)
		})
		require.NoError(t, err)

		// The flat tail window is the rarest word, so position 5
		// leads the outer order and takes the tie.
		result, _, err := e.Search(context.Background(), heuristicSource(t, values, 5))
		require.NoError(t, err)

		assert.Equal(t, 5, result.Position)
		assert.InDelta(t, math.Sqrt(5), result.Distance, 1e-9)
	})
}

func TestSearchCancellation(t *testing.T) {
	rng := testutil.NewRNG(9)
	values := rng.RandomWalk(200, 0.5)
	src := heuristicSource(t, values, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	t.Run("Sequential", func(t *testing.T) {
		e, err := New(values, 10)
		require.NoError(t, err)

		_, _, err = e.Search(ctx, src)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Parallel", func(t *testing.T) {
		e, err := New(values, 10, func(o *Options) {
			o.Workers = 4
		})
		require.NoError(t, err)

		_, _, err = e.Search(ctx, src)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearchPruning(t *testing.T) {
	// A damped stretch in a periodic signal gives the heuristic order
	// a head start: the discord is found first and nearly every other
	// candidate dies on its first same-word neighbor.
	values := testutil.Sine(400, 40, 1)
	testutil.ScaleRange(values, 200, 230, 0.1)

	e, err := New(values, 20, func(o *Options) {
		o.RandomSeed = seedPtr(42)
	})
	require.NoError(t, err)

	heuristic, heuristicStats, err := e.Search(context.Background(), heuristicSource(t, values, 20))
	require.NoError(t, err)

	brute, bruteStats, err := e.Search(context.Background(), index.Sequential(len(values)-20+1))
	require.NoError(t, err)

	assert.Equal(t, brute.Position, heuristic.Position)
	assert.InDelta(t, brute.Distance, heuristic.Distance, 1e-9)
	assert.Less(t, heuristicStats.DistanceCalls, bruteStats.DistanceCalls)
	assert.Greater(t, heuristicStats.CandidatesAbandoned, int64(0))
}

func TestNewInvalidWindowSize(t *testing.T) {
	values := make([]float64, 20)

	for _, windowSize := range []int{0, 1, 21} {
		_, err := New(values, windowSize)

		var target *index.ErrInvalidWindowSize
		require.ErrorAs(t, err, &target)
		assert.Equal(t, windowSize, target.Size)
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{
		Candidates:          10,
		DistanceCalls:       120,
		PartialDistances:    30,
		CandidatesAbandoned: 7,
	}

	assert.Equal(t, "candidates=10 distance_calls=120 partial=30 abandoned=7", s.String())
}
