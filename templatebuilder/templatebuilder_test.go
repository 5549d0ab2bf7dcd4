package templatebuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vparity/pargame/arena"
)

// S2 — trivial win: a single vertex, self-loop, color 2.
func TestBuildTrivialWin(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(0, arena.Player0, 2))
	require.NoError(t, a.AddEdge(0, 0))

	res, err := Build(a, arena.NewColorView(a, 0))
	require.NoError(t, err)

	require.True(t, res.Win0.Has(0))
	require.Empty(t, res.Win1)
	require.Equal(t, 0, res.Template.SizeUnsafe())
	require.Equal(t, 0, res.Template.SizeColive())
	require.Len(t, res.Template.Live, 1)
	require.True(t, res.Template.Live[0].Has(0, 0))
}

// S3 — two-vertex choice: V={0,1}, owner(0)=P0, owner(1)=P1,
// E={(0,0),(0,1),(1,0)}, κ(0)=2, κ(1)=1.
func TestBuildTwoVertexChoice(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(0, arena.Player0, 2))
	require.NoError(t, a.AddVertex(1, arena.Player1, 1))
	require.NoError(t, a.AddEdge(0, 0))
	require.NoError(t, a.AddEdge(0, 1))
	require.NoError(t, a.AddEdge(1, 0))

	res, err := Build(a, arena.NewColorView(a, 0))
	require.NoError(t, err)

	require.True(t, res.Win0.Has(0))
	require.True(t, res.Win0.Has(1))
	require.Empty(t, res.Win1)

	require.True(t, res.Template.CoLive.Has(0, 1))
	found := false
	for _, g := range res.Template.Live {
		if g.Has(0, 0) {
			found = true
		}
	}
	require.True(t, found, "expected a live group anchored on edge (0,0)")
}

// A game entirely won by player 1 should produce an empty template: an
// odd self-loop has no player-0 vertex to build any template around.
func TestBuildPlayer1WinsEverything(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(0, arena.Player1, 1))
	require.NoError(t, a.AddEdge(0, 0))

	res, err := Build(a, arena.NewColorView(a, 0))
	require.NoError(t, err)

	require.Empty(t, res.Win0)
	require.True(t, res.Win1.Has(0))
	require.Equal(t, 0, res.Template.SizeUnsafe())
	require.Equal(t, 0, res.Template.SizeColive())
	require.Empty(t, res.Template.Live)
}
