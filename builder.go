// Package hotsax provides time series discord discovery.
//
// This file implements the fluent builder API for creating and configuring Detector instances.
// The builder is immutable - each method returns a new builder with the updated configuration.
package hotsax

import (
	"github.com/hupe1980/hotsax/engine"
	"github.com/hupe1980/hotsax/index"
)

// New creates a new Detector builder with the specified window size.
// The window size is the length in samples of the discord to look for.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents
// accidental state sharing.
//
// Example:
//
//	det, err := hotsax.New(50).
//	    WordSize(3).
//	    Alphabet(3).
//	    RandomSeed(42).
//	    Workers(4).
//	    Build()
func New(windowSize int) Builder {
	return Builder{
		windowSize:       windowSize,
		wordSize:         index.DefaultOptions.WordSize,
		alphabetSize:     index.DefaultOptions.AlphabetSize,
		squeezeThreshold: index.DefaultOptions.MergeThreshold,
		workers:          engine.DefaultOptions.Workers,
	}
}

// Builder is an immutable fluent builder for creating Detector instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	windowSize       int
	wordSize         int
	alphabetSize     int
	squeezeThreshold float64
	randomSeed       *int64
	workers          int
	logger           *Logger
	metrics          MetricsCollector
}

// WordSize sets the SAX word length (PAA segments per window).
// Default: 3. Recommended range: 3-8.
func (b Builder) WordSize(wordSize int) Builder {
	b.wordSize = wordSize
	return b
}

// Alphabet sets the SAX alphabet size.
// Small alphabets group windows aggressively, large ones barely at all.
// Default: 3. Valid range: 2-26.
func (b Builder) Alphabet(alphabetSize int) Builder {
	b.alphabetSize = alphabetSize
	return b
}

// SqueezeThreshold sets the word similarity threshold for squeezer mode.
// A threshold of 1 keeps exact word grouping.
// Default: 0.5. Valid range: (0, 1].
func (b Builder) SqueezeThreshold(threshold float64) Builder {
	b.squeezeThreshold = threshold
	return b
}

// RandomSeed sets the seed for the randomized part of the candidate order.
// If not set, a random seed (time-based) is used. The discord returned
// never depends on the seed.
func (b Builder) RandomSeed(seed int64) Builder {
	b.randomSeed = &seed
	return b
}

// Workers sets the number of goroutines evaluating candidates.
// Default: 1 (sequential). Zero or negative selects GOMAXPROCS.
func (b Builder) Workers(n int) Builder {
	b.workers = n
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build creates the Detector.
func (b Builder) Build() (*Detector, error) {
	optFns := []Option{
		WithWordSize(b.wordSize),
		WithAlphabetSize(b.alphabetSize),
		WithSqueezeThreshold(b.squeezeThreshold),
		WithWorkers(b.workers),
	}
	if b.randomSeed != nil {
		optFns = append(optFns, WithRandomSeed(*b.randomSeed))
	}
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}

	return NewDetector(b.windowSize, optFns...)
}

// MustBuild creates the Detector, panicking on error.
func (b Builder) MustBuild() *Detector {
	det, err := b.Build()
	if err != nil {
		panic(err)
	}
	return det
}
