package engine

import (
	"context"
	"errors"
	"math"
	"runtime"
	"time"

	"github.com/hupe1980/hotsax/index"
)

// ErrInsufficientData is returned when the series cannot hold two
// non-overlapping windows, so no discord exists.
var ErrInsufficientData = errors.New("insufficient data: series cannot hold two non-overlapping windows")

// Result is the discord found by a search.
type Result struct {
	// Position is the window start position of the discord.
	Position int

	// Distance is the Euclidean distance between the discord window and
	// its nearest non-overlapping neighbor, both z-normalized.
	Distance float64
}

// Options contains configuration options for the search engine.
type Options struct {
	// RandomSeed seeds the inner-loop shuffles. If nil, a seed is drawn
	// from the wall clock.
	RandomSeed *int64

	// Workers is the number of goroutines scanning outer candidates.
	// One worker keeps the search fully sequential; zero or negative
	// values use runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions contains the default configuration options for the search engine.
var DefaultOptions = Options{
	Workers: 1,
}

// Engine searches a series for its discord with a fixed window size.
type Engine struct {
	opts       Options
	values     []float64
	windowSize int
	numWindows int
	seed       int64
}

// New creates a search engine over values. The engine keeps a
// reference to values; callers must not modify the slice while
// searching.
func New(values []float64, windowSize int, optFns ...func(o *Options)) (*Engine, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if windowSize < 2 || windowSize > len(values) {
		return nil, &index.ErrInvalidWindowSize{Size: windowSize, SeriesLen: len(values)}
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	seed := time.Now().UnixNano()
	if opts.RandomSeed != nil {
		seed = *opts.RandomSeed
	}

	return &Engine{
		opts:       opts,
		values:     values,
		windowSize: windowSize,
		numWindows: len(values) - windowSize + 1,
		seed:       seed,
	}, nil
}

// Search finds the discord using the visiting orders of src, which
// must cover the same series the engine was created with. It returns
// ErrInsufficientData when the series is shorter than two windows.
//
// Cancellation is honored between outer candidates.
func (e *Engine) Search(ctx context.Context, src index.Source) (Result, Stats, error) {
	if len(e.values) < 2*e.windowSize {
		return Result{}, Stats{}, ErrInsufficientData
	}

	if e.opts.Workers > 1 {
		return e.searchParallel(ctx, src)
	}

	return e.searchSequential(ctx, src)
}

func (e *Engine) searchSequential(ctx context.Context, src index.Source) (Result, Stats, error) {
	s := newSearcher(e)

	best := Result{Position: -1, Distance: math.Inf(-1)}

	for _, p := range src.Outer() {
		if err := ctx.Err(); err != nil {
			return Result{}, Stats{}, err
		}

		// Ties keep the earlier candidate: only a strictly farther
		// nearest neighbor replaces the best.
		nearest, ok := s.evaluate(src, p, best.Distance)
		if ok && nearest > best.Distance {
			best = Result{Position: p, Distance: nearest}
		}
	}

	return best, s.stats, nil
}
