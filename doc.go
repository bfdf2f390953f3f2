// Package hotsax provides time series discord discovery for Go.
//
// A discord is the subsequence of a series that lies farthest from its
// nearest non-overlapping neighbor, the single most unusual window the
// series contains. Discord discovery is a robust, parameter-light way to
// surface anomalies in periodic and quasi-periodic data.
//
// # Quick Start
//
//	ctx := context.Background()
//	det, _ := hotsax.New(50).RandomSeed(42).Build()
//	discord, _ := det.Find(ctx, values)
//	fmt.Println(discord.Position, discord.Distance)
//
// # Search Modes
//
//	discord, _ = det.Search(values).BruteForce().Execute(ctx)   // exhaustive
//	discord, _ = det.Search(values).Squeezer().Execute(ctx)     // clustered words
//	discord, _ = det.Search(values).Range(0, 5000).Execute(ctx) // subrange
//
// Every mode returns an exact discord. The heuristic and squeezer modes
// only change how quickly the search gets there, which on well-behaved
// series turns a quadratic scan into a near-linear one.
//
// # Determinism
//
// The randomized part of the candidate order is seedable and the result
// never depends on it:
//
//	det, _ := hotsax.New(50).RandomSeed(42).Workers(8).Build()
//
// Runs with different seeds or worker counts return the same discord;
// only the work counters in SearchStats differ.
//
// # Key Features
//
//   - HOT SAX candidate ordering with two-level early abandonment
//   - Exact results in every mode
//   - Squeezer word clustering for noisy series
//   - Deterministic and seedable, sequential or parallel
//   - Structured logging (slog) and pluggable metrics
package hotsax
