package engine

import (
	"math"
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hotsax/distance"
	"github.com/hupe1980/hotsax/index"
)

// searcher holds the per-goroutine scratch state of a search: reusable
// normalized window buffers, the visited bitmap and the shuffle RNG.
type searcher struct {
	values     []float64
	windowSize int
	numWindows int
	seed       int64

	rng     *rand.Rand
	pw      []float64       // normalized candidate window
	qw      []float64       // normalized neighbor window
	rest    []int           // remainder positions, reshuffled per candidate
	visited *roaring.Bitmap // exclusion zone plus pass-1 positions

	stats Stats
}

func newSearcher(e *Engine) *searcher {
	return &searcher{
		values:     e.values,
		windowSize: e.windowSize,
		numWindows: e.numWindows,
		seed:       e.seed,
		rng:        rand.New(rand.NewSource(e.seed)),
		pw:         make([]float64, e.windowSize),
		qw:         make([]float64, e.windowSize),
		rest:       make([]int, 0, e.numWindows),
		visited:    roaring.New(),
	}
}

// evaluate scans candidate p for its nearest non-overlapping neighbor
// in two passes: the source's preferred positions in their given
// order, then every remaining position in seeded random order. It
// returns false when the candidate was abandoned because a neighbor
// closer than best turned up, or when no admissible neighbor exists.
func (s *searcher) evaluate(src index.Source, p int, best float64) (float64, bool) {
	s.stats.Candidates++

	n := s.windowSize
	distance.ZNormalizeInto(s.pw, s.values[p:p+n])

	// Window starts within n-1 of p overlap the candidate and are
	// excluded as neighbors, p itself included.
	lo := p - n + 1
	if lo < 0 {
		lo = 0
	}

	hi := p + n - 1
	if hi > s.numWindows-1 {
		hi = s.numWindows - 1
	}

	s.visited.Clear()
	s.visited.AddRange(uint64(lo), uint64(hi)+1)

	nearest := math.Inf(1)

	for _, q := range src.Inner(p) {
		if s.visited.Contains(uint32(q)) {
			continue
		}

		s.visited.Add(uint32(q))

		d, done := s.measure(q, nearest)
		if !done {
			continue
		}

		if d < best {
			s.stats.CandidatesAbandoned++
			return d, false
		}

		if d < nearest {
			nearest = d
		}
	}

	s.rest = s.rest[:0]
	for q := 0; q < s.numWindows; q++ {
		if !s.visited.Contains(uint32(q)) {
			s.rest = append(s.rest, q)
		}
	}

	// Seeding per candidate keeps the shuffle independent of the order
	// in which candidates are picked up.
	s.rng.Seed(candidateSeed(s.seed, p))
	s.rng.Shuffle(len(s.rest), func(i, j int) {
		s.rest[i], s.rest[j] = s.rest[j], s.rest[i]
	})

	for _, q := range s.rest {
		d, done := s.measure(q, nearest)
		if !done {
			continue
		}

		if d < best {
			s.stats.CandidatesAbandoned++
			return d, false
		}

		if d < nearest {
			nearest = d
		}
	}

	if math.IsInf(nearest, 1) {
		return nearest, false
	}

	return nearest, true
}

// measure computes the distance between the candidate window and the
// window at q, abandoning accumulation once it can no longer improve
// on cutoff.
func (s *searcher) measure(q int, cutoff float64) (float64, bool) {
	distance.ZNormalizeInto(s.qw, s.values[q:q+s.windowSize])

	s.stats.DistanceCalls++

	d, done := distance.EuclideanEarlyAbandon(s.pw, s.qw, cutoff)
	if !done {
		s.stats.PartialDistances++
	}

	return d, done
}

// candidateSeed derives the shuffle seed of candidate p from the
// engine seed.
func candidateSeed(seed int64, p int) int64 {
	return seed ^ int64(uint64(p+1)*0x9E3779B97F4A7C15)
}
