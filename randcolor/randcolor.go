package randcolor

import (
	"fmt"
	"math/rand"

	"github.com/vparity/pargame/arena"
)

// DefaultSeed is used in place of an explicit seed of 0, mirroring
// tsp/rng.go's "seed==0 ⇒ use defaultRNGSeed" policy so a caller can pass
// the zero value without accidentally requesting a time-based source.
const DefaultSeed int64 = 1

// RNGFromSeed returns a deterministic RNG for seed, treating seed == 0 as
// DefaultSeed. Shared with package puf so both generators draw from the
// same seed-handling policy.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream id into an independent
// child seed, the SplitMix64-style avalanche used by tsp/rng.go's
// deriveSeed, so augmenting with several objectives at once does not
// hand every objective the same color assignment.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// GenerateColors assigns every vertex in verts a color in [0, maxColor],
// deterministically from seed, following MultiGame.hpp's random_colors:
// each color first claims a quota of len(verts)/(2*maxColor) vertices
// chosen without replacement, then every vertex left over draws a
// uniformly random color.
//
// maxColor == 0 collapses the quota to zero (the original's own
// len/(2*max_col) divides by zero in that case; every vertex simply falls
// through to the uniform leftover draw over the single color 0).
func GenerateColors(verts []arena.VertexID, maxColor arena.Color, seed int64) map[arena.VertexID]arena.Color {
	rng := RNGFromSeed(seed)
	colors := make(map[arena.VertexID]arena.Color, len(verts))

	remaining := append([]arena.VertexID(nil), verts...)
	minNum := 0
	if maxColor > 0 {
		minNum = len(remaining) / (2 * int(maxColor))
	}

	for col := 0; col <= int(maxColor); col++ {
		for i := 0; i < minNum && len(remaining) > 0; i++ {
			idx := rng.Intn(len(remaining))
			colors[remaining[idx]] = arena.Color(col)
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}
	}
	for _, v := range remaining {
		colors[v] = arena.Color(rng.Intn(int(maxColor) + 1))
	}
	return colors
}

// Augment returns a new Arena with count additional objectives appended
// after a's existing ones. Each new objective is a fresh GenerateColors
// draw over a's vertex set; structure (vertices, owners, edges, edge-node
// labels) and every original objective's colors are preserved verbatim.
func Augment(a *arena.Arena, count int, maxColor arena.Color, seed int64) (*arena.Arena, error) {
	if count < 0 {
		return nil, fmt.Errorf("randcolor: Augment: count must be >= 0, got %d", count)
	}

	verts := a.Vertices()
	origN := a.NumObjectives()
	newN := origN + count

	var opts []arena.Option
	if v, ok := a.Initial(); ok {
		opts = append(opts, arena.WithInitialVertex(v))
	}
	out := arena.NewArena(newN, opts...)

	generated := make([]map[arena.VertexID]arena.Color, count)
	for i := 0; i < count; i++ {
		generated[i] = GenerateColors(verts, maxColor, deriveSeed(seed, uint64(i)))
	}

	for _, v := range verts {
		owner, err := a.Owner(v)
		if err != nil {
			return nil, fmt.Errorf("randcolor: Augment: %w", err)
		}
		colors := make([]arena.Color, newN)
		for i := 0; i < origN; i++ {
			c, err := a.Color(i, v)
			if err != nil {
				return nil, fmt.Errorf("randcolor: Augment: %w", err)
			}
			colors[i] = c
		}
		for i := 0; i < count; i++ {
			colors[origN+i] = generated[i][v]
		}
		if err := out.AddVertex(v, owner, colors...); err != nil {
			return nil, fmt.Errorf("randcolor: Augment: %w", err)
		}
	}

	for _, v := range verts {
		succ, err := a.Successors(v)
		if err != nil {
			return nil, fmt.Errorf("randcolor: Augment: %w", err)
		}
		for _, u := range succ {
			if err := out.AddEdge(v, u); err != nil {
				return nil, fmt.Errorf("randcolor: Augment: %w", err)
			}
		}
		if owner, _ := a.Owner(v); owner == arena.EdgeNode {
			if label := a.Label(v); label != "" {
				if err := out.SetLabel(v, label); err != nil {
					return nil, fmt.Errorf("randcolor: Augment: %w", err)
				}
			}
		}
	}

	return out, nil
}
