package index

import "fmt"

// Stats describes the shape of a built candidate index.
type Stats struct {
	// Windows is the number of window start positions.
	Windows int

	// Groups is the number of groups.
	Groups int

	// LargestGroup is the size of the most populated group.
	LargestGroup int

	// RarestGroup is the size of the least populated group.
	RarestGroup int

	// RarestWord is the SAX word of the first outer candidate, the
	// earliest position in the rarest group.
	RarestWord string
}

// Stats returns statistics about the candidate index.
func (ix *Index) Stats() Stats {
	s := Stats{
		Windows: len(ix.words),
		Groups:  len(ix.groups),
	}

	for _, members := range ix.groups {
		if len(members) > s.LargestGroup {
			s.LargestGroup = len(members)
		}

		if s.RarestGroup == 0 || len(members) < s.RarestGroup {
			s.RarestGroup = len(members)
		}
	}

	if len(ix.outer) > 0 {
		s.RarestWord = ix.words[ix.outer[0]]
	}

	return s
}

// String returns a string representation of the index statistics.
func (s Stats) String() string {
	return fmt.Sprintf("windows=%d groups=%d largest=%d rarest=%d rarest_word=%q",
		s.Windows, s.Groups, s.LargestGroup, s.RarestGroup, s.RarestWord)
}
