package engine

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/hupe1980/hotsax/index"
	"golang.org/x/sync/errgroup"
)

// atomicFloat64 is a float64 shared between workers that only ever
// moves upward.
type atomicFloat64 struct {
	bits atomic.Uint64
}

func newAtomicFloat64(v float64) *atomicFloat64 {
	f := &atomicFloat64{}
	f.bits.Store(math.Float64bits(v))

	return f
}

func (f *atomicFloat64) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// RaiseTo lifts the value to v if v is larger.
func (f *atomicFloat64) RaiseTo(v float64) {
	for {
		old := f.bits.Load()
		if math.Float64frombits(old) >= v {
			return
		}

		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}

// workerResult is one worker's best candidate together with its outer
// rank, so ties merge to the candidate the sequential search would
// have kept.
type workerResult struct {
	best  Result
	rank  int
	stats Stats
}

// searchParallel spreads the outer loop over e.opts.Workers
// goroutines. Workers pull outer ranks from a shared counter and
// abandon candidates against a shared monotonic best distance; a
// lagging shared best only costs extra work, never a different
// answer.
func (e *Engine) searchParallel(ctx context.Context, src index.Source) (Result, Stats, error) {
	outer := src.Outer()

	results := make([]workerResult, e.opts.Workers)

	var next atomic.Int64

	shared := newAtomicFloat64(math.Inf(-1))

	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < e.opts.Workers; w++ {
		w := w
		g.Go(func() error {
			s := newSearcher(e)

			local := workerResult{
				best: Result{Position: -1, Distance: math.Inf(-1)},
				rank: math.MaxInt,
			}

			for {
				rank := int(next.Add(1)) - 1
				if rank >= len(outer) {
					break
				}

				if err := gctx.Err(); err != nil {
					return err
				}

				p := outer[rank]

				nearest, ok := s.evaluate(src, p, shared.Load())
				if !ok {
					continue
				}

				shared.RaiseTo(nearest)

				if nearest > local.best.Distance || (nearest == local.best.Distance && rank < local.rank) {
					local.best = Result{Position: p, Distance: nearest}
					local.rank = rank
				}
			}

			local.stats = s.stats
			results[w] = local

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, Stats{}, err
	}

	merged := workerResult{
		best: Result{Position: -1, Distance: math.Inf(-1)},
		rank: math.MaxInt,
	}

	var stats Stats
	for _, r := range results {
		stats.merge(r.stats)

		if r.best.Position < 0 {
			continue
		}

		if r.best.Distance > merged.best.Distance || (r.best.Distance == merged.best.Distance && r.rank < merged.rank) {
			merged.best = r.best
			merged.rank = r.rank
		}
	}

	return merged.best, stats, nil
}
