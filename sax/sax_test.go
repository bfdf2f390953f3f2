package sax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWord(t *testing.T) {
	tests := []struct {
		name         string
		window       []float64
		wordSize     int
		alphabetSize int
		expected     string
	}{
		{"SpikeRight", []float64{0, 0, 10}, 3, 3, "aac"},
		{"SpikeMiddle", []float64{0, 10, 0}, 3, 3, "aca"},
		{"SpikeLeft", []float64{10, 0, 0}, 3, 3, "caa"},
		{"Ascending", []float64{1, 2, 3}, 3, 3, "abc"},
		{"Constant", []float64{7, 7, 7}, 3, 3, "bbb"},
		{"SingleSymbol", []float64{1, 2, 3}, 1, 3, "b"},
		{"WiderAlphabet", []float64{1, 2, 3, 4}, 4, 4, "abcd"},
		{"StepReduced", []float64{1, 1, 1, 5, 5, 5}, 2, 3, "ac"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Word(tt.window, tt.wordSize, tt.alphabetSize)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWordInvalidParameters(t *testing.T) {
	t.Run("WordSizeZero", func(t *testing.T) {
		_, err := Word([]float64{1, 2, 3}, 0, 3)
		var e *ErrInvalidWordSize
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 0, e.WordSize)
		assert.Equal(t, 3, e.WindowLen)
	})

	t.Run("WordSizeExceedsWindow", func(t *testing.T) {
		_, err := Word([]float64{1, 2, 3}, 4, 3)
		var e *ErrInvalidWordSize
		require.ErrorAs(t, err, &e)
	})

	t.Run("AlphabetTooSmall", func(t *testing.T) {
		_, err := Word([]float64{1, 2, 3}, 3, 1)
		var e *ErrInvalidAlphabetSize
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 1, e.Size)
	})

	t.Run("AlphabetTooLarge", func(t *testing.T) {
		_, err := Word([]float64{1, 2, 3}, 3, 27)
		var e *ErrInvalidAlphabetSize
		require.ErrorAs(t, err, &e)
	})
}

func TestSymbolFor(t *testing.T) {
	cuts := []float64{-0.5, 0.5}

	assert.Equal(t, byte(0), symbolFor(-1, cuts))
	assert.Equal(t, byte(1), symbolFor(0, cuts))
	assert.Equal(t, byte(2), symbolFor(1, cuts))

	// A value exactly at a breakpoint belongs to the interval above it.
	assert.Equal(t, byte(1), symbolFor(-0.5, cuts))
	assert.Equal(t, byte(2), symbolFor(0.5, cuts))
}
