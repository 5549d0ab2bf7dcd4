package paritysolver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vparity/pargame/arena"
)

// selfLoopColor0: a single vertex, self-loop, color 0 (even). Player 0
// wins trivially — the only infinite play sees color 0 forever.
func TestSolveSingleVertexEvenSelfLoop(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(1, arena.Player0, 0))
	require.NoError(t, a.AddEdge(1, 1))

	res, err := Solve(a, arena.NewColorView(a, 0))
	require.NoError(t, err)
	require.True(t, res.Win0.Has(1))
	require.False(t, res.Win1.Has(1))
}

func TestSolveSingleVertexOddSelfLoop(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(1, arena.Player1, 1))
	require.NoError(t, a.AddEdge(1, 1))

	res, err := Solve(a, arena.NewColorView(a, 0))
	require.NoError(t, err)
	require.True(t, res.Win1.Has(1))
	require.False(t, res.Win0.Has(1))
}

// Two-vertex game: 1 (P1, color 1) -> 2 (P0, color 2) -> 1. The only
// infinite play alternates colors {1,2}; max seen infinitely often is 2
// (even), so player 0 wins from both vertices regardless of who picks.
func TestSolveAlternatingEvenWin(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(1, arena.Player1, 1))
	require.NoError(t, a.AddVertex(2, arena.Player0, 2))
	require.NoError(t, a.AddEdge(1, 2))
	require.NoError(t, a.AddEdge(2, 1))

	res, err := Solve(a, arena.NewColorView(a, 0))
	require.NoError(t, err)
	require.True(t, res.Win0.Has(1))
	require.True(t, res.Win0.Has(2))
	require.Empty(t, res.Win1)
}

// A game with a genuine choice: vertex 1 (P1) can either loop on color 1
// forever (P1 wins) or move to vertex 2 (P0, color 2) which loops back to
// 1. Since 1 is P1-owned, P1 will always choose the self-loop, so P1 wins
// from 1; vertex 2, however, is P0-owned and its only move is back to 1,
// so once there P1's choice still determines the outcome — 2 is in P1's
// winning region too, since P1 can force the infinite play into the
// color-1 self-loop at every visit to 1.
func TestSolveAdversarialChoice(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(1, arena.Player1, 1))
	require.NoError(t, a.AddVertex(2, arena.Player0, 2))
	require.NoError(t, a.AddEdge(1, 1))
	require.NoError(t, a.AddEdge(1, 2))
	require.NoError(t, a.AddEdge(2, 1))

	res, err := Solve(a, arena.NewColorView(a, 0))
	require.NoError(t, err)
	require.True(t, res.Win1.Has(1))
	require.True(t, res.Win1.Has(2))
}

func TestSolvePartitionsEveryVertex(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(1, arena.Player0, 3))
	require.NoError(t, a.AddVertex(2, arena.Player1, 0))
	require.NoError(t, a.AddVertex(3, arena.Player0, 2))
	require.NoError(t, a.AddEdge(1, 2))
	require.NoError(t, a.AddEdge(2, 3))
	require.NoError(t, a.AddEdge(3, 1))

	res, err := Solve(a, arena.NewColorView(a, 0))
	require.NoError(t, err)
	all := append(res.Win0.Slice(), res.Win1.Slice()...)
	require.Len(t, all, 3)
	for _, v := range []arena.VertexID{1, 2, 3} {
		require.True(t, res.Win0.Has(v) || res.Win1.Has(v))
		require.False(t, res.Win0.Has(v) && res.Win1.Has(v))
	}
}

func TestSolveDepthExceededReturnsInvariantError(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(1, arena.Player0, 0))
	require.NoError(t, a.AddEdge(1, 1))

	_, err := SolveDepth(a, arena.NewColorView(a, 0), -1)
	require.Error(t, err)
}
