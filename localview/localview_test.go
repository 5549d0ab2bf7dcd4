package localview

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

// buildChoice: vertex 0 (P0) has four outgoing edges to 1..4, classified
// unsafe, co-live, live, and left unrestricted respectively.
func buildChoice(t *testing.T) *arena.Arena {
	t.Helper()
	a := arena.NewArena(1)
	require.NoError(t, a.AddVertex(0, arena.Player0, 0))
	require.NoError(t, a.AddVertex(1, arena.Player1, 0))
	require.NoError(t, a.AddVertex(2, arena.Player1, 0))
	require.NoError(t, a.AddVertex(3, arena.Player1, 0))
	require.NoError(t, a.AddVertex(4, arena.Player1, 0))
	require.NoError(t, a.AddEdge(0, 1))
	require.NoError(t, a.AddEdge(0, 2))
	require.NoError(t, a.AddEdge(0, 3))
	require.NoError(t, a.AddEdge(0, 4))
	return a
}

func TestBuildPartitionsIntoFiveClasses(t *testing.T) {
	a := buildChoice(t)
	tpl := template.New()
	tpl.AddUnsafeEdge(0, 1)
	tpl.AddColiveEdge(0, 2)
	tpl.AddLiveGroup(setops.EdgeMap{0: setops.NewVertexSet(3)})

	views, err := Build(a, setops.NewVertexSet(0), tpl)
	require.NoError(t, err)

	v := views[0]
	require.NotNil(t, v)
	require.Equal(t, setops.NewVertexSet(1, 2, 3, 4), v.All)
	require.Equal(t, setops.NewVertexSet(1), v.Unsafe)
	require.Equal(t, setops.NewVertexSet(2), v.CoLive)
	require.Equal(t, setops.NewVertexSet(3), v.Live)
	require.Equal(t, setops.NewVertexSet(4), v.Unrestricted)
	require.Equal(t, setops.NewVertexSet(3), v.Preferred)
}

func TestBuildPreferredFallsBackToUnrestricted(t *testing.T) {
	a := buildChoice(t)
	tpl := template.New()
	tpl.AddUnsafeEdge(0, 1)

	views, err := Build(a, setops.NewVertexSet(0), tpl)
	require.NoError(t, err)

	v := views[0]
	require.Empty(t, v.Live)
	require.Equal(t, setops.NewVertexSet(2, 3, 4), v.Unrestricted)
	require.Equal(t, v.Unrestricted, v.Preferred)
}

func TestBuildSkipsNonPlayer0Vertices(t *testing.T) {
	a := buildChoice(t)
	tpl := template.New()

	views, err := Build(a, setops.NewVertexSet(0, 1), tpl)
	require.NoError(t, err)
	require.Contains(t, views, arena.VertexID(0))
	require.NotContains(t, views, arena.VertexID(1))
}

func TestStringIsDeterministic(t *testing.T) {
	a := buildChoice(t)
	tpl := template.New()
	tpl.AddUnsafeEdge(0, 1)

	views, err := Build(a, setops.NewVertexSet(0), tpl)
	require.NoError(t, err)
	s1 := views[0].String()
	s2 := views[0].String()
	require.Equal(t, s1, s2)
}
