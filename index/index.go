package index

import (
	"fmt"
	"sort"

	"github.com/hupe1980/hotsax/sax"
)

// ErrInvalidWindowSize is a named error type for window sizes the series cannot support.
type ErrInvalidWindowSize struct {
	Size      int // Requested window size
	SeriesLen int // Length of the series
}

// Error returns the error message for an invalid window size.
func (e *ErrInvalidWindowSize) Error() string {
	return fmt.Sprintf("invalid window size %d for series of length %d", e.Size, e.SeriesLen)
}

// Options contains configuration options for the candidate index.
type Options struct {
	// WindowSize is the discord length in samples. It must be at least 2
	// and no longer than the series.
	WindowSize int

	// WordSize is the number of PAA segments per SAX word. It must be at
	// least 1 and no larger than WindowSize.
	WordSize int

	// AlphabetSize is the number of distinct SAX symbols. It must be
	// between sax.MinAlphabetSize and sax.MaxAlphabetSize.
	AlphabetSize int

	// MergeThreshold is the squeezer similarity threshold in (0, 1].
	// Only NewSqueezed uses it; a threshold of 1 keeps exact grouping.
	MergeThreshold float64
}

// DefaultOptions contains the default configuration options for the candidate index.
var DefaultOptions = Options{
	WordSize:       3,
	AlphabetSize:   3,
	MergeThreshold: 0.5,
}

func (o Options) validate(seriesLen int) error {
	if o.WindowSize < 2 || o.WindowSize > seriesLen {
		return &ErrInvalidWindowSize{Size: o.WindowSize, SeriesLen: seriesLen}
	}

	if o.WordSize < 1 || o.WordSize > o.WindowSize {
		return &sax.ErrInvalidWordSize{WordSize: o.WordSize, WindowLen: o.WindowSize}
	}

	if _, err := sax.Breakpoints(o.AlphabetSize); err != nil {
		return err
	}

	return nil
}

// Compile-time check to ensure Index satisfies the Source interface.
var _ Source = (*Index)(nil)

// Index groups window start positions by SAX word and derives the
// visiting orders used by discord search.
type Index struct {
	opts    Options
	words   []string // SAX word per window start position
	groups  [][]int  // positions per group, in insertion order
	groupOf []int    // group id per window start position
	outer   []int    // outer visiting order: rare groups first
}

// New builds an exact candidate index over values: one group per
// distinct SAX word.
func New(values []float64, optFns ...func(o *Options)) (*Index, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.validate(len(values)); err != nil {
		return nil, err
	}

	words, tr, err := symbolize(values, opts)
	if err != nil {
		return nil, err
	}

	return newIndex(opts, words, tr.groups()), nil
}

// symbolize computes the SAX word of every window and inserts it into a
// fresh trie.
func symbolize(values []float64, opts Options) ([]string, *trie, error) {
	numWindows := len(values) - opts.WindowSize + 1

	words := make([]string, numWindows)
	tr := newTrie()

	for p := 0; p < numWindows; p++ {
		word, err := sax.Word(values[p:p+opts.WindowSize], opts.WordSize, opts.AlphabetSize)
		if err != nil {
			return nil, nil, err
		}

		words[p] = word
		tr.insert(word, p)
	}

	return words, tr, nil
}

// newIndex assembles an Index from per-position words and their
// position groups, precomputing the outer visiting order.
func newIndex(opts Options, words []string, groups [][]int) *Index {
	groupOf := make([]int, len(words))
	for id, members := range groups {
		for _, p := range members {
			groupOf[p] = id
		}
	}

	outer := make([]int, len(words))
	for i := range outer {
		outer[i] = i
	}

	// Rare groups first, ties broken by ascending position.
	sort.Slice(outer, func(i, j int) bool {
		fi := len(groups[groupOf[outer[i]]])
		fj := len(groups[groupOf[outer[j]]])

		if fi != fj {
			return fi < fj
		}

		return outer[i] < outer[j]
	})

	return &Index{
		opts:    opts,
		words:   words,
		groups:  groups,
		groupOf: groupOf,
		outer:   outer,
	}
}

// Len returns the number of window start positions in the index.
func (ix *Index) Len() int {
	return len(ix.words)
}

// Outer returns the outer visiting order: positions in rare groups
// first, ties broken by ascending position. The returned slice is
// shared and must not be modified.
func (ix *Index) Outer() []int {
	return ix.outer
}

// Inner returns the positions grouped with pos, in insertion order. The
// slice includes pos itself, is shared and must not be modified.
func (ix *Index) Inner(pos int) []int {
	return ix.groups[ix.groupOf[pos]]
}

// WordAt returns the SAX word of the window starting at pos.
func (ix *Index) WordAt(pos int) string {
	return ix.words[pos]
}

// Groups returns the number of groups in the index.
func (ix *Index) Groups() int {
	return len(ix.groups)
}
