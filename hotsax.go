// Package hotsax provides time series discord discovery for Go.
//
// A discord is the fixed-length subsequence of a series that is farthest
// from its nearest non-overlapping neighbor, which makes it the most
// anomalous window the series contains. Hotsax finds discords exactly,
// with production-ready features including:
//
//   - HOT SAX candidate ordering with two-level early abandonment
//   - Exact results in every mode: heuristic, squeezer and brute force
//     agree on the discord distance
//   - Sliding-window SAX symbolization with cached Gaussian breakpoints
//   - Squeezer word clustering for noisy series
//   - Immutable fluent builder and functional options
//   - Seedable candidate order; the result never depends on the seed
//   - Parallel candidate evaluation with identical results
//   - Structured logging (slog) and pluggable metrics
//
// # Mode Selection
//
// Choose the right search mode for your data:
//   - Heuristic: the default. Visits rare SAX words first and abandons
//     hopeless candidates early. Near-linear on well-behaved series.
//   - Squeezer: the heuristic over clustered word groups. Helps when
//     noise scatters similar shapes across many rare words.
//   - BruteForce: every candidate pair. Quadratic; use it as ground
//     truth or on short series.
//
// # Quick Start (Fluent API)
//
// Create a detector with the type-safe builder:
//
//	ctx := context.Background()
//	det, err := hotsax.New(50).  // window size in samples
//	    WordSize(3).             // SAX word length
//	    Alphabet(3).             // SAX alphabet size
//	    RandomSeed(42).          // deterministic candidate order
//	    Workers(4).              // parallel outer loop
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//
// Search with the fluent API:
//
//	discord, err := det.Search(values).Execute(ctx)
//	fmt.Println(discord.Position, discord.Distance, discord.Word)
//
// Restrict the search or switch modes:
//
//	discord, stats, err := det.Search(values).
//	    Range(1000, 9000).  // half-open subrange
//	    Squeezer().         // clustered word groups
//	    ExecuteWithStats(ctx)
//
// # Functional Options
//
// The builder is a thin layer over functional options:
//
//	det, err := hotsax.NewDetector(50,
//	    hotsax.WithWordSize(3),
//	    hotsax.WithWorkers(4),
//	)
//
// # Determinism
//
// Part of the candidate order is randomized. The seed only changes how
// much work the search does, never which discord it reports: runs with
// different seeds or worker counts return the same position and
// distance. SearchStats counters from parallel runs may differ between
// runs; the result does not.
package hotsax

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/hotsax/engine"
	"github.com/hupe1980/hotsax/index"
	"github.com/hupe1980/hotsax/sax"
)

var (
	// ErrInsufficientData is returned when the series, or the selected
	// range of it, cannot hold two non-overlapping windows.
	ErrInsufficientData = errors.New("insufficient data")
)

// Mode selects the discord search strategy.
type Mode int

const (
	// ModeHeuristic visits candidates rare SAX words first and abandons
	// hopeless ones early. This is the default.
	ModeHeuristic Mode = iota

	// ModeBruteForce evaluates every candidate pair in ascending
	// position order.
	ModeBruteForce

	// ModeSqueezer runs the heuristic over squeezer-clustered word
	// groups.
	ModeSqueezer
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeHeuristic:
		return "heuristic"
	case ModeBruteForce:
		return "brute_force"
	case ModeSqueezer:
		return "squeezer"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Discord is the result of a discord search.
type Discord struct {
	// Position is the start index of the discord window, relative to
	// the full series even when the search was restricted to a range.
	Position int

	// Distance is the Euclidean distance between the z-normalized
	// discord window and its nearest non-overlapping neighbor.
	Distance float64

	// Word is the SAX word of the discord window.
	Word string
}

// SearchStats summarizes the work a search performed. See engine.Stats
// for the individual counters.
type SearchStats = engine.Stats

// Detector finds discords of a fixed window size in time series.
// A Detector is immutable after construction, safe for concurrent use
// and reusable across many series.
type Detector struct {
	windowSize int
	opts       options
}

// NewDetector creates a Detector with the given window size.
// The window size is the length in samples of the discord to look for.
//
// Most users should prefer the fluent builder instead:
//
//	det, err := hotsax.New(50).WordSize(3).Build()
func NewDetector(windowSize int, optFns ...Option) (*Detector, error) {
	opts := applyOptions(optFns)

	if windowSize < 2 {
		return nil, &ErrInvalidWindowSize{Size: windowSize}
	}

	if opts.wordSize < 1 || opts.wordSize > windowSize {
		return nil, &ErrInvalidWordSize{WordSize: opts.wordSize, WindowSize: windowSize}
	}

	if opts.alphabetSize < sax.MinAlphabetSize || opts.alphabetSize > sax.MaxAlphabetSize {
		return nil, &ErrInvalidAlphabetSize{Size: opts.alphabetSize}
	}

	if opts.squeezeThreshold <= 0 || opts.squeezeThreshold > 1 {
		return nil, &ErrInvalidThreshold{Threshold: opts.squeezeThreshold}
	}

	return &Detector{
		windowSize: windowSize,
		opts:       opts,
	}, nil
}

// WindowSize returns the configured window size.
func (d *Detector) WindowSize() int {
	return d.windowSize
}

// Find searches the full series and returns its discord.
// It is shorthand for d.Search(values).Execute(ctx).
func (d *Detector) Find(ctx context.Context, values []float64) (Discord, error) {
	return d.Search(values).Execute(ctx)
}

// find runs one discord search over values[lo:hi] in the given mode.
func (d *Detector) find(ctx context.Context, values []float64, lo, hi int, mode Mode) (Discord, SearchStats, error) {
	start := time.Now()

	if lo < 0 || hi > len(values) || lo > hi {
		err := &ErrInvalidRange{Start: lo, End: hi, SeriesLen: len(values)}
		d.opts.metricsCollector.RecordSearch(mode, 0, time.Since(start), err)
		d.opts.logger.LogSearch(ctx, mode, d.windowSize, Discord{}, err)
		return Discord{}, SearchStats{}, err
	}

	segment := values[lo:hi]

	if len(segment) < 2*d.windowSize {
		err := fmt.Errorf("%w: %d samples cannot hold two windows of size %d", ErrInsufficientData, len(segment), d.windowSize)
		d.opts.metricsCollector.RecordSearch(mode, 0, time.Since(start), err)
		d.opts.logger.LogSearch(ctx, mode, d.windowSize, Discord{}, err)
		return Discord{}, SearchStats{}, err
	}

	src, err := d.buildSource(ctx, segment, mode)
	if err != nil {
		err = translateError(err)
		d.opts.metricsCollector.RecordSearch(mode, 0, time.Since(start), err)
		d.opts.logger.LogSearch(ctx, mode, d.windowSize, Discord{}, err)
		return Discord{}, SearchStats{}, err
	}

	eng, err := engine.New(segment, d.windowSize, func(o *engine.Options) {
		o.RandomSeed = d.opts.randomSeed
		o.Workers = d.opts.workers
	})
	if err != nil {
		err = translateError(err)
		d.opts.metricsCollector.RecordSearch(mode, 0, time.Since(start), err)
		d.opts.logger.LogSearch(ctx, mode, d.windowSize, Discord{}, err)
		return Discord{}, SearchStats{}, err
	}

	result, stats, err := eng.Search(ctx, src)
	if err != nil {
		err = translateError(err)
		d.opts.metricsCollector.RecordSearch(mode, stats.DistanceCalls, time.Since(start), err)
		d.opts.logger.LogSearch(ctx, mode, d.windowSize, Discord{}, err)
		return Discord{}, SearchStats{}, err
	}

	discord := Discord{
		Position: lo + result.Position,
		Distance: result.Distance,
		Word:     d.wordAt(src, segment, result.Position),
	}

	duration := time.Since(start)
	d.opts.metricsCollector.RecordSearch(mode, stats.DistanceCalls, duration, nil)
	d.opts.logger.LogSearch(ctx, mode, d.windowSize, discord, nil)

	return discord, stats, nil
}

// buildSource assembles the candidate source for the requested mode.
func (d *Detector) buildSource(ctx context.Context, segment []float64, mode Mode) (index.Source, error) {
	if mode == ModeBruteForce {
		return index.Sequential(len(segment) - d.windowSize + 1), nil
	}

	start := time.Now()

	optFn := func(o *index.Options) {
		o.WindowSize = d.windowSize
		o.WordSize = d.opts.wordSize
		o.AlphabetSize = d.opts.alphabetSize
		o.MergeThreshold = d.opts.squeezeThreshold
	}

	var (
		ix  *index.Index
		err error
	)

	if mode == ModeSqueezer {
		ix, err = index.NewSqueezed(segment, optFn)
	} else {
		ix, err = index.New(segment, optFn)
	}

	duration := time.Since(start)

	if err != nil {
		d.opts.metricsCollector.RecordIndexBuild(0, 0, duration, err)
		d.opts.logger.LogIndexBuild(ctx, 0, 0, err)
		return nil, err
	}

	stats := ix.Stats()
	d.opts.metricsCollector.RecordIndexBuild(stats.Windows, stats.Groups, duration, nil)
	d.opts.logger.LogIndexBuild(ctx, stats.Windows, stats.Groups, nil)

	return ix, nil
}

// wordAt returns the SAX word of the window starting at pos. Heuristic
// and squeezer sources already carry the words; brute force recomputes.
func (d *Detector) wordAt(src index.Source, segment []float64, pos int) string {
	if ix, ok := src.(*index.Index); ok {
		return ix.WordAt(pos)
	}

	word, err := sax.Word(segment[pos:pos+d.windowSize], d.opts.wordSize, d.opts.alphabetSize)
	if err != nil {
		return ""
	}

	return word
}
