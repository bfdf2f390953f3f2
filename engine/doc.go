// Package engine runs the discord search over a series.
//
// The engine owns the outer/inner candidate loops and the two early
// abandonment levels; the visiting orders themselves come from an
// index.Source, so the same loops serve heuristic, squeezed and
// brute-force search.
//
// # Search Structure
//
// For every candidate window the engine scans neighbor windows for the
// nearest non-overlapping one, keeping the candidate whose nearest
// neighbor is farthest:
//
//   - Candidate abandonment: as soon as some neighbor is closer than
//     the best discord distance so far, the candidate is discarded
//     without visiting its remaining neighbors.
//   - Accumulation abandonment: a single distance computation stops
//     once its partial sum can no longer improve on the candidate's
//     nearest distance so far.
//
// Both cuts are loss-free: the reported discord is identical to the
// one an exhaustive scan finds, only the work differs.
//
// # Parallel Mode
//
// With more than one worker the outer loop is spread over goroutines
// that share a monotonically raised best distance. Inner shuffle seeds
// are derived per candidate, so worker scheduling cannot change any
// visiting order and the result stays identical to the sequential
// search; only the work counters in Stats vary between runs.
package engine
