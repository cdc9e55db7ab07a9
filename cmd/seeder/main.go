package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sproutly/matchengine/internal/seed"
)

// Default configuration constants.
const (
	defaultTrainers   = 50
	defaultActivities = 30
	defaultSeed       = 42
	defaultTimeout    = 30 * time.Second
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the match engine")
		trainers   = flag.Int("trainers", defaultTrainers, "Number of trainers to generate")
		activities = flag.Int("activities", defaultActivities, "Number of activities to generate")
		randSeed   = flag.Int64("seed", defaultSeed, "Random seed for deterministic catalogs")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	gen := seed.NewGenerator(*randSeed)
	ts, as, bindings := gen.Catalog(*trainers, *activities)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pusher := seed.NewPusher(*baseURL, *timeout)
	if err := pusher.Push(ctx, ts, as, bindings); err != nil {
		fmt.Fprintln(os.Stderr, "seeding failed:", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d trainers, %d activities, %d bindings to %s\n",
		len(ts), len(as), len(bindings), *baseURL)
}
