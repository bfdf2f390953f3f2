// Package index builds the candidate index that drives discord search.
//
// The index assigns every sliding window of a series its SAX word and
// groups window start positions by word. Discord search visits rare
// groups first in the outer loop and same-group positions first in the
// inner loop, which is what makes early abandonment effective: rare
// words are likely discords, and same-word windows are likely close
// neighbors that terminate weak candidates quickly.
//
// # Index Flavors
//
// Two constructors are available:
//
//   - New: exact grouping, one group per distinct SAX word
//   - NewSqueezed: squeezer clustering, merges groups whose words agree
//     closely enough symbol by symbol
//
// Both produce an Index whose visiting orders are deterministic for a
// given series and configuration. Squeezed grouping never splits the
// positions of a single word across clusters.
//
// # Sources
//
// The search engine consumes visiting orders through the Source
// interface. An Index is a Source; the Sequential source covers
// brute-force search, where every candidate is tried in ascending
// order and no grouping is wanted.
package index
