package engine

import "fmt"

// Stats counts the work a search performed. With multiple workers the
// totals depend on scheduling and can vary between runs; the search
// result never does.
type Stats struct {
	// Candidates is the number of outer candidates evaluated.
	Candidates int64

	// DistanceCalls is the number of window pairs measured.
	DistanceCalls int64

	// PartialDistances is the number of measurements cut short once
	// they could no longer improve the candidate's nearest distance.
	PartialDistances int64

	// CandidatesAbandoned is the number of candidates discarded after
	// a neighbor closer than the best discord distance turned up.
	CandidatesAbandoned int64
}

func (s *Stats) merge(other Stats) {
	s.Candidates += other.Candidates
	s.DistanceCalls += other.DistanceCalls
	s.PartialDistances += other.PartialDistances
	s.CandidatesAbandoned += other.CandidatesAbandoned
}

// String returns a string representation of the search statistics.
func (s Stats) String() string {
	return fmt.Sprintf("candidates=%d distance_calls=%d partial=%d abandoned=%d",
		s.Candidates, s.DistanceCalls, s.PartialDistances, s.CandidatesAbandoned)
}
