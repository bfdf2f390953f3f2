package hotsax

import (
	"log/slog"

	"github.com/hupe1980/hotsax/engine"
	"github.com/hupe1980/hotsax/index"
)

type options struct {
	wordSize         int
	alphabetSize     int
	squeezeThreshold float64
	randomSeed       *int64
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Detector construction behavior.
type Option func(*options)

// WithWordSize configures the SAX word length, the number of PAA
// segments each window is reduced to. Shorter words make more windows
// collide into the same group; longer words keep them apart.
//
// Default: 3.
func WithWordSize(wordSize int) Option {
	return func(o *options) {
		o.wordSize = wordSize
	}
}

// WithAlphabetSize configures the SAX alphabet size. Small alphabets
// group aggressively, large ones barely at all.
//
// Default: 3. Valid range: 2..26.
func WithAlphabetSize(alphabetSize int) Option {
	return func(o *options) {
		o.alphabetSize = alphabetSize
	}
}

// WithSqueezeThreshold configures the word similarity threshold for
// squeezer mode, in (0, 1]. A threshold of 1 keeps exact word grouping.
// Heuristic and brute force searches ignore it.
//
// Default: 0.5.
func WithSqueezeThreshold(threshold float64) Option {
	return func(o *options) {
		o.squeezeThreshold = threshold
	}
}

// WithRandomSeed configures the seed for the randomized part of the
// candidate order. The reported discord does not depend on the seed;
// only the amount of work done to find it does.
//
// If not set, a time-based seed is used.
func WithRandomSeed(seed int64) Option {
	return func(o *options) {
		o.randomSeed = &seed
	}
}

// WithWorkers configures the number of goroutines evaluating candidates.
// Zero or negative selects GOMAXPROCS.
//
// Default: 1 (sequential).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// searches.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hotsax.BasicMetricsCollector{}
//	det, _ := hotsax.NewDetector(50, hotsax.WithMetricsCollector(metrics))
//	// ... run searches ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := hotsax.NewJSONLogger(slog.LevelInfo)
//	det, _ := hotsax.NewDetector(50, hotsax.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		wordSize:         index.DefaultOptions.WordSize,
		alphabetSize:     index.DefaultOptions.AlphabetSize,
		squeezeThreshold: index.DefaultOptions.MergeThreshold,
		workers:          engine.DefaultOptions.Workers,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
