// Package sax implements Symbolic Aggregate approXimation: mapping a
// numeric window to a short symbol string ("word") over a small alphabet.
//
// The pipeline is z-normalize -> PAA (segment means) -> symbol lookup
// against Gaussian equiprobable breakpoints:
//
//	word, err := sax.Word(window, 3, 3) // e.g. "acb"
//
// The building blocks are exposed independently:
//
//	agg, err := sax.PAA(values, 4)      // 4 segment means
//	cuts, err := sax.Breakpoints(5)     // 4 cut points for a 5-letter alphabet
//
// Words are lossy and collision-prone on purpose: two windows with the
// same word are coarsely shape-similar. The discord search uses words
// only to order candidates, never for the final distance decision.
package sax
