package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/hotsax"
	"github.com/hupe1980/hotsax/testutil"
)

func main() {
	seed := int64(4711)
	size := 8000
	windowSize := 64

	// Noisy periodic series with one flattened stretch.
	rng := testutil.NewRNG(seed)
	values := rng.NoisySine(size, 200, 1.0, 0.05)
	testutil.ScaleRange(values, 5000, 5064, 0.2)

	det, err := hotsax.New(windowSize).
		RandomSeed(seed).
		Workers(4).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	fmt.Println("--- Series ---")
	fmt.Println("Samples:", size)
	fmt.Println("Window size:", windowSize)
	fmt.Println()

	fmt.Println("--- Heuristic ---")

	start := time.Now()

	discord, stats, err := det.Search(values).ExecuteWithStats(ctx)
	if err != nil {
		log.Fatal(err)
	}

	printDiscord(discord, stats, time.Since(start))

	fmt.Println("--- Squeezer ---")

	start = time.Now()

	discord, stats, err = det.Search(values).Squeezer().ExecuteWithStats(ctx)
	if err != nil {
		log.Fatal(err)
	}

	printDiscord(discord, stats, time.Since(start))

	fmt.Println("--- Brute ---")

	start = time.Now()

	discord, stats, err = det.Search(values).BruteForce().ExecuteWithStats(ctx)
	if err != nil {
		log.Fatal(err)
	}

	printDiscord(discord, stats, time.Since(start))
}

func printDiscord(d hotsax.Discord, stats hotsax.SearchStats, took time.Duration) {
	fmt.Printf("Position: %d, Distance: %.4f, Word: %s\n", d.Position, d.Distance, d.Word)
	fmt.Printf("Distance calls: %d, Abandoned candidates: %d\n", stats.DistanceCalls, stats.CandidatesAbandoned)
	fmt.Printf("Seconds: %.4f\n\n", took.Seconds())
}
