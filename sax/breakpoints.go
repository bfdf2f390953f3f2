package sax

import (
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// MinAlphabetSize is structural: one breakpoint needs two regions.
	MinAlphabetSize = 2

	// MaxAlphabetSize comes from rendering symbols as the letters
	// 'a'..'z'. Useful SAX alphabets are far smaller (3-10).
	MaxAlphabetSize = 26
)

// breakpointCache holds one immutable table per alphabet size.
var breakpointCache sync.Map // int -> []float64

// Breakpoints returns the a-1 ascending cut points that split the
// standard normal distribution into a regions of equal probability mass.
// The table for a given alphabet size is computed once and cached; the
// returned slice is a copy the caller may modify.
func Breakpoints(alphabetSize int) ([]float64, error) {
	cuts, err := breakpoints(alphabetSize)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(cuts))
	copy(out, cuts)
	return out, nil
}

// breakpoints returns the shared cached table. Callers must not modify it.
func breakpoints(alphabetSize int) ([]float64, error) {
	if alphabetSize < MinAlphabetSize || alphabetSize > MaxAlphabetSize {
		return nil, &ErrInvalidAlphabetSize{Size: alphabetSize}
	}

	if cached, ok := breakpointCache.Load(alphabetSize); ok {
		return cached.([]float64), nil
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	cuts := make([]float64, alphabetSize-1)
	for i := range cuts {
		cuts[i] = norm.Quantile(float64(i+1) / float64(alphabetSize))
	}

	actual, _ := breakpointCache.LoadOrStore(alphabetSize, cuts)
	return actual.([]float64), nil
}
