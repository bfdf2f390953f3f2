package hotsax

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hotsax/engine"
	"github.com/hupe1980/hotsax/index"
	"github.com/hupe1980/hotsax/sax"
)

// ErrInvalidWindowSize indicates a window size the detector or series
// cannot support.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWindowSize struct {
	Size      int
	SeriesLen int
	cause     error
}

func (e *ErrInvalidWindowSize) Error() string {
	if e.SeriesLen > 0 {
		return fmt.Sprintf("invalid window size %d for series of length %d", e.Size, e.SeriesLen)
	}
	return fmt.Sprintf("invalid window size %d: must be at least 2", e.Size)
}

func (e *ErrInvalidWindowSize) Unwrap() error { return e.cause }

// ErrInvalidWordSize indicates a SAX word size outside 1..window size.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWordSize struct {
	WordSize   int
	WindowSize int
	cause      error
}

func (e *ErrInvalidWordSize) Error() string {
	return fmt.Sprintf("invalid word size %d for window size %d", e.WordSize, e.WindowSize)
}

func (e *ErrInvalidWordSize) Unwrap() error { return e.cause }

// ErrInvalidAlphabetSize indicates a SAX alphabet size outside 2..26.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidAlphabetSize struct {
	Size  int
	cause error
}

func (e *ErrInvalidAlphabetSize) Error() string {
	return fmt.Sprintf("invalid alphabet size %d: must be %d..%d", e.Size, sax.MinAlphabetSize, sax.MaxAlphabetSize)
}

func (e *ErrInvalidAlphabetSize) Unwrap() error { return e.cause }

// ErrInvalidThreshold indicates a squeeze threshold outside (0, 1].
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidThreshold struct {
	Threshold float64
	cause     error
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid squeeze threshold %g: must be in (0, 1]", e.Threshold)
}

func (e *ErrInvalidThreshold) Unwrap() error { return e.cause }

// ErrInvalidRange indicates a search range outside the series bounds.
type ErrInvalidRange struct {
	Start     int
	End       int
	SeriesLen int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range [%d, %d) for series of length %d", e.Start, e.End, e.SeriesLen)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Insufficient data unification.
	if errors.Is(err, engine.ErrInsufficientData) {
		return fmt.Errorf("%w: %w", ErrInsufficientData, err)
	}

	// Parameter normalization.
	var ws *index.ErrInvalidWindowSize
	if errors.As(err, &ws) {
		return &ErrInvalidWindowSize{Size: ws.Size, SeriesLen: ws.SeriesLen, cause: err}
	}
	var wd *sax.ErrInvalidWordSize
	if errors.As(err, &wd) {
		return &ErrInvalidWordSize{WordSize: wd.WordSize, WindowSize: wd.WindowLen, cause: err}
	}
	var ab *sax.ErrInvalidAlphabetSize
	if errors.As(err, &ab) {
		return &ErrInvalidAlphabetSize{Size: ab.Size, cause: err}
	}
	var mt *index.ErrInvalidMergeThreshold
	if errors.As(err, &mt) {
		return &ErrInvalidThreshold{Threshold: mt.Threshold, cause: err}
	}

	return err
}
