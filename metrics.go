package hotsax

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searchCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(mode hotsax.Mode, distanceCalls int64, duration time.Duration, err error) {
//	    p.searchCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordIndexBuild is called after each candidate index build.
	// windows and groups describe the built index, duration is the
	// build time, err is nil if successful.
	RecordIndexBuild(windows, groups int, duration time.Duration, err error)

	// RecordSearch is called after each discord search. distanceCalls
	// is the number of window pairs measured, duration is the total
	// time taken, err is nil if successful.
	RecordSearch(mode Mode, distanceCalls int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndexBuild(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(Mode, int64, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexBuildCount      atomic.Int64
	IndexBuildErrors     atomic.Int64
	IndexBuildTotalNanos atomic.Int64
	SearchCount          atomic.Int64
	SearchErrors         atomic.Int64
	SearchTotalNanos     atomic.Int64
	DistanceCalls        atomic.Int64
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(windows, groups int, duration time.Duration, err error) {
	b.IndexBuildCount.Add(1)
	b.IndexBuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IndexBuildErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(mode Mode, distanceCalls int64, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.DistanceCalls.Add(distanceCalls)
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IndexBuildCount:    b.IndexBuildCount.Load(),
		IndexBuildErrors:   b.IndexBuildErrors.Load(),
		IndexBuildAvgNanos: b.getAvgIndexBuildNanos(),
		SearchCount:        b.SearchCount.Load(),
		SearchErrors:       b.SearchErrors.Load(),
		SearchAvgNanos:     b.getAvgSearchNanos(),
		DistanceCalls:      b.DistanceCalls.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgIndexBuildNanos() int64 {
	count := b.IndexBuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.IndexBuildTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IndexBuildCount    int64
	IndexBuildErrors   int64
	IndexBuildAvgNanos int64
	SearchCount        int64
	SearchErrors       int64
	SearchAvgNanos     int64
	DistanceCalls      int64
}
