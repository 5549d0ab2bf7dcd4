package main

import (
	"fmt"
	"os"
	"time"
)

// resolveSeed turns an absent seed (the zero value) into fresh per-run
// entropy drawn from the current time, following dungeon.generateSeed's
// "Seed == 0 means auto-generate from current time" policy, and logs the
// seed actually used to stderr so a run — seeded explicitly or not — can
// be reproduced later with an explicit -puf-seed/-augment-seed flag.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		now := time.Now().UnixNano()
		if now < 0 {
			now = -now
		}
		seed = now
		if seed == 0 {
			seed = 1
		}
	}
	fmt.Fprintf(os.Stderr, "pargame: seed %d\n", seed)
	return seed
}
