package composer

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
)

// genArena draws a small single-objective arena with every vertex given
// at least one outgoing edge, so the result is always Validate-clean and
// safe to hand to Solve (spec §8's universal properties are stated over
// "every arena A", and a generator that could produce dead ends would
// test arena.Validate's rejection path instead of Solve's behavior).
func genArena(t *rapid.T) *arena.Arena {
	n := rapid.IntRange(1, 6).Draw(t, "n")
	a := arena.NewArena(1, arena.WithInitialVertex(0))
	for v := 0; v < n; v++ {
		owner := arena.Player0
		if rapid.IntRange(0, 1).Draw(t, "owner") == 1 {
			owner = arena.Player1
		}
		color := arena.Color(rapid.IntRange(0, 3).Draw(t, "color"))
		if err := a.AddVertex(arena.VertexID(v), owner, color); err != nil {
			t.Fatalf("AddVertex(%d): %v", v, err)
		}
	}
	for v := 0; v < n; v++ {
		first := rapid.IntRange(0, n-1).Draw(t, "succ")
		if err := a.AddEdge(arena.VertexID(v), arena.VertexID(first)); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", v, first, err)
		}
		if extra := rapid.IntRange(0, n-1).Draw(t, "extraSucc"); extra != first {
			if err := a.AddEdge(arena.VertexID(v), arena.VertexID(extra)); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", v, extra, err)
			}
		}
	}
	return a
}

// TestPropertyPartition checks spec §8 property 1: the returned (W0, W1)
// partitions V.
func TestPropertyPartition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genArena(t)
		result, err := Solve(context.Background(), a)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}

		universe := setops.NewVertexSet(a.Vertices()...)
		union := setops.Union(result.Win0, result.Win1)
		if !setops.Equal(union, universe) {
			t.Fatalf("partition: Win0 ∪ Win1 = %v, want %v", union.Slice(), universe.Slice())
		}
		if setops.Intersects(result.Win0, result.Win1) {
			t.Fatalf("partition: Win0 %v and Win1 %v intersect", result.Win0.Slice(), result.Win1.Slice())
		}
	})
}

// TestPropertyTemplateEdgesHavePlayer0Source checks spec §8 property 4:
// every edge in U, C, and any live group has a player-0 source.
func TestPropertyTemplateEdgesHavePlayer0Source(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genArena(t)
		result, err := Solve(context.Background(), a)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}

		check := func(label string, m setops.EdgeMap) {
			for from := range m {
				owner, err := a.Owner(from)
				if err != nil {
					t.Fatalf("%s: Owner(%d): %v", label, from, err)
				}
				if owner != arena.Player0 {
					t.Fatalf("%s: edge source %d has owner %v, want Player0", label, from, owner)
				}
			}
		}
		check("unsafe", result.Template.Unsafe)
		check("co-live", result.Template.CoLive)
		for _, g := range result.Template.Live {
			check("live", g)
		}
	})
}
