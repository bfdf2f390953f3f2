// Package hotsax provides time series discord discovery.
//
// This file implements a fluent search API for running discord searches.
package hotsax

import (
	"context"
)

// Search creates a new fluent search builder over values.
//
// Example:
//
//	discord, err := det.Search(values).
//	    Range(1000, 9000).
//	    Squeezer().
//	    Execute(ctx)
func (d *Detector) Search(values []float64) *SearchBuilder {
	return &SearchBuilder{
		d:      d,
		values: values,
		mode:   ModeHeuristic,
		start:  0,
		end:    len(values),
	}
}

// SearchBuilder is a fluent builder for constructing discord searches.
type SearchBuilder struct {
	d      *Detector
	values []float64
	mode   Mode
	start  int
	end    int
}

// Range restricts the search to the half-open subrange [start, end) of
// the series. Reported positions stay relative to the full series.
func (sb *SearchBuilder) Range(start, end int) *SearchBuilder {
	sb.start = start
	sb.end = end
	return sb
}

// Heuristic selects HOT SAX ordered search. This is the default.
func (sb *SearchBuilder) Heuristic() *SearchBuilder {
	sb.mode = ModeHeuristic
	return sb
}

// BruteForce selects exhaustive pairwise search in ascending position
// order. It finds the same discord distance as the heuristic with none
// of the shortcuts, which makes it useful as ground truth.
func (sb *SearchBuilder) BruteForce() *SearchBuilder {
	sb.mode = ModeBruteForce
	return sb
}

// Squeezer selects heuristic search over clustered word groups.
func (sb *SearchBuilder) Squeezer() *SearchBuilder {
	sb.mode = ModeSqueezer
	return sb
}

// Execute runs the search and returns the discord.
func (sb *SearchBuilder) Execute(ctx context.Context) (Discord, error) {
	discord, _, err := sb.d.find(ctx, sb.values, sb.start, sb.end, sb.mode)
	return discord, err
}

// ExecuteWithStats runs the search and additionally returns counters
// describing the work performed.
func (sb *SearchBuilder) ExecuteWithStats(ctx context.Context) (Discord, SearchStats, error) {
	return sb.d.find(ctx, sb.values, sb.start, sb.end, sb.mode)
}

// MustExecute runs the search, panicking on error.
// Use this only in tests or when you're certain the input is valid.
func (sb *SearchBuilder) MustExecute(ctx context.Context) Discord {
	discord, err := sb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return discord
}
