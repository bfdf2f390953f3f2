package index

// Source supplies the visiting orders that drive discord search.
type Source interface {
	// Len returns the number of window start positions.
	Len() int

	// Outer returns the outer-loop visiting order over all positions.
	// The returned slice is shared and must not be modified.
	Outer() []int

	// Inner returns the positions to visit first in the inner loop of
	// candidate pos, including pos itself. Positions missing from the
	// slice are visited afterwards in randomized order. The returned
	// slice is shared and must not be modified.
	Inner(pos int) []int
}

// Compile-time check to ensure sequential satisfies the Source interface.
var _ Source = (*sequential)(nil)

// Sequential returns the Source for brute-force search: the outer loop
// visits positions in ascending order and the inner loop of every
// candidate does the same, leaving nothing to randomize.
func Sequential(numWindows int) Source {
	order := make([]int, numWindows)
	for i := range order {
		order[i] = i
	}

	return &sequential{order: order}
}

type sequential struct {
	order []int
}

func (s *sequential) Len() int { return len(s.order) }

func (s *sequential) Outer() []int { return s.order }

func (s *sequential) Inner(_ int) []int { return s.order }
