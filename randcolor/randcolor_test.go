package randcolor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vparity/pargame/arena"
)

func vertexRange(n int) []arena.VertexID {
	out := make([]arena.VertexID, n)
	for i := range out {
		out[i] = arena.VertexID(i)
	}
	return out
}

func TestGenerateColorsIsDeterministic(t *testing.T) {
	verts := vertexRange(12)
	a := GenerateColors(verts, 3, 42)
	b := GenerateColors(verts, 3, 42)
	require.Equal(t, a, b)
}

func TestGenerateColorsDiffersAcrossSeeds(t *testing.T) {
	verts := vertexRange(12)
	a := GenerateColors(verts, 3, 1)
	b := GenerateColors(verts, 3, 2)
	require.NotEqual(t, a, b)
}

func TestGenerateColorsCoversEveryVertexInRange(t *testing.T) {
	verts := vertexRange(20)
	colors := GenerateColors(verts, 4, 7)
	require.Len(t, colors, len(verts))
	for _, v := range verts {
		c, ok := colors[v]
		require.True(t, ok)
		require.LessOrEqual(t, c, arena.Color(4))
	}
}

func TestGenerateColorsMeetsQuotaPerColor(t *testing.T) {
	verts := vertexRange(40)
	const maxColor = arena.Color(3)
	colors := GenerateColors(verts, maxColor, 99)

	wantMin := len(verts) / (2 * int(maxColor))
	counts := make(map[arena.Color]int)
	for _, c := range colors {
		counts[c]++
	}
	for col := arena.Color(0); col <= maxColor; col++ {
		require.GreaterOrEqual(t, counts[col], wantMin)
	}
}

func TestGenerateColorsZeroMaxColorIsSingleColor(t *testing.T) {
	verts := vertexRange(5)
	colors := GenerateColors(verts, 0, 5)
	for _, v := range verts {
		require.Equal(t, arena.Color(0), colors[v])
	}
}

func TestAugmentPreservesStructureAndOriginalColors(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(0, arena.Player0, 2))
	require.NoError(t, a.AddVertex(1, arena.Player1, 1))
	require.NoError(t, a.AddEdge(0, 1))
	require.NoError(t, a.AddEdge(1, 0))

	out, err := Augment(a, 2, 3, 11)
	require.NoError(t, err)
	require.Equal(t, 3, out.NumObjectives())
	require.Equal(t, a.Vertices(), out.Vertices())

	for _, v := range a.Vertices() {
		wantOwner, _ := a.Owner(v)
		gotOwner, err := out.Owner(v)
		require.NoError(t, err)
		require.Equal(t, wantOwner, gotOwner)

		wantColor, _ := a.Color(0, v)
		gotColor, err := out.Color(0, v)
		require.NoError(t, err)
		require.Equal(t, wantColor, gotColor)

		for obj := 1; obj < 3; obj++ {
			c, err := out.Color(obj, v)
			require.NoError(t, err)
			require.LessOrEqual(t, c, arena.Color(3))
		}

		wantSucc, _ := a.Successors(v)
		gotSucc, err := out.Successors(v)
		require.NoError(t, err)
		require.Equal(t, wantSucc, gotSucc)
	}
}

func TestAugmentRejectsNegativeCount(t *testing.T) {
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(0, arena.Player0, 0))
	_, err := Augment(a, -1, 2, 1)
	require.Error(t, err)
}
