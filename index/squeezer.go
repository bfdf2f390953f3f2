package index

import (
	"fmt"
	"sort"
)

// ErrInvalidMergeThreshold is a named error type for squeezer thresholds outside (0, 1].
type ErrInvalidMergeThreshold struct {
	Threshold float64 // Requested merge threshold
}

// Error returns the error message for an invalid merge threshold.
func (e *ErrInvalidMergeThreshold) Error() string {
	return fmt.Sprintf("invalid merge threshold %g: must be in (0, 1]", e.Threshold)
}

// NewSqueezed builds a candidate index over values with squeezer
// clustering: distinct SAX words whose symbols agree closely enough
// are merged into a single group. Each word joins the first existing
// cluster whose similarity reaches the merge threshold, so a threshold
// of 1 keeps exact grouping while lower values coarsen it.
func NewSqueezed(values []float64, optFns ...func(o *Options)) (*Index, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.validate(len(values)); err != nil {
		return nil, err
	}

	if opts.MergeThreshold <= 0 || opts.MergeThreshold > 1 {
		return nil, &ErrInvalidMergeThreshold{Threshold: opts.MergeThreshold}
	}

	words, tr, err := symbolize(values, opts)
	if err != nil {
		return nil, err
	}

	// Distinct words in first-appearance order.
	distinct := make([]string, 0, tr.size)
	seen := make(map[string]struct{}, tr.size)

	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}

		seen[word] = struct{}{}
		distinct = append(distinct, word)
	}

	clusters := squeeze(distinct, tr, opts.MergeThreshold)

	groups := make([][]int, len(clusters))
	for id, c := range clusters {
		var members []int
		for _, word := range c.words {
			members = append(members, tr.lookup(word)...)
		}

		sort.Ints(members)
		groups[id] = members
	}

	return newIndex(opts, words, groups), nil
}

// cluster accumulates the words merged into one squeezer group,
// together with per-slot symbol counts weighted by word frequency.
type cluster struct {
	words   []string
	weight  int            // total positions across member words
	support []map[byte]int // per symbol slot: symbol -> weighted count
}

func newCluster(wordSize int) *cluster {
	support := make([]map[byte]int, wordSize)
	for i := range support {
		support[i] = make(map[byte]int)
	}

	return &cluster{support: support}
}

// similarity scores word against the cluster: the mean, across symbol
// slots, of the weight fraction agreeing with the word's symbol.
func (c *cluster) similarity(word string) float64 {
	var sum float64
	for i := 0; i < len(word); i++ {
		sum += float64(c.support[i][word[i]]) / float64(c.weight)
	}

	return sum / float64(len(word))
}

// add merges word into the cluster with the given frequency weight.
func (c *cluster) add(word string, weight int) {
	c.words = append(c.words, word)
	c.weight += weight

	for i := 0; i < len(word); i++ {
		c.support[i][word[i]] += weight
	}
}

// squeeze clusters distinct words in order: each joins the first
// cluster of maximal similarity if that reaches threshold, and seeds a
// new cluster otherwise.
func squeeze(distinct []string, tr *trie, threshold float64) []*cluster {
	var clusters []*cluster

	for _, word := range distinct {
		weight := len(tr.lookup(word))

		best := -1
		bestSim := 0.0

		for i, c := range clusters {
			if sim := c.similarity(word); sim > bestSim {
				best, bestSim = i, sim
			}
		}

		if best >= 0 && bestSim >= threshold {
			clusters[best].add(word, weight)
			continue
		}

		c := newCluster(len(word))
		c.add(word, weight)
		clusters = append(clusters, c)
	}

	return clusters
}
