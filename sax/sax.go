package sax

import (
	"fmt"

	"github.com/hupe1980/hotsax/distance"
)

// ErrInvalidWordSize indicates a word size outside 1..window length.
type ErrInvalidWordSize struct {
	WordSize  int
	WindowLen int
}

func (e *ErrInvalidWordSize) Error() string {
	return fmt.Sprintf("invalid word size %d for window length %d", e.WordSize, e.WindowLen)
}

// ErrInvalidAlphabetSize indicates an alphabet size outside
// MinAlphabetSize..MaxAlphabetSize.
type ErrInvalidAlphabetSize struct {
	Size int
}

func (e *ErrInvalidAlphabetSize) Error() string {
	return fmt.Sprintf("invalid alphabet size %d (must be %d..%d)", e.Size, MinAlphabetSize, MaxAlphabetSize)
}

// Word maps a window to its SAX word: z-normalize, reduce to wordSize
// segment means via PAA, then map each mean to a symbol 'a'..'a'+a-1 by
// locating its breakpoint interval. Values below the first breakpoint map
// to 'a', values at or above the last to the final symbol.
func Word(window []float64, wordSize, alphabetSize int) (string, error) {
	cuts, err := breakpoints(alphabetSize)
	if err != nil {
		return "", err
	}

	agg, err := PAA(distance.ZNormalize(window), wordSize)
	if err != nil {
		return "", err
	}

	symbols := make([]byte, len(agg))
	for i, v := range agg {
		symbols[i] = 'a' + symbolFor(v, cuts)
	}
	return string(symbols), nil
}

// symbolFor returns the index of the breakpoint interval v falls into.
// The mapping is monotonic: a value equal to a breakpoint belongs to the
// interval above it.
func symbolFor(v float64, cuts []float64) byte {
	var s byte
	for int(s) < len(cuts) && v >= cuts[s] {
		s++
	}
	return s
}
