package gameio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/localview"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

func TestWriteLocalViewsOrdersByVertexID(t *testing.T) {
	views := map[arena.VertexID]*localview.View{
		5: {
			All:          setops.NewVertexSet(1, 2),
			Unsafe:       setops.NewVertexSet(1),
			CoLive:       setops.VertexSet{},
			Live:         setops.NewVertexSet(2),
			Unrestricted: setops.VertexSet{},
			Preferred:    setops.NewVertexSet(2),
		},
		1: {
			All:          setops.NewVertexSet(3),
			Unsafe:       setops.VertexSet{},
			CoLive:       setops.VertexSet{},
			Live:         setops.VertexSet{},
			Unrestricted: setops.NewVertexSet(3),
			Preferred:    setops.NewVertexSet(3),
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteLocalViews(&sb, views))

	out := sb.String()
	idx1 := strings.Index(out, `"vertex": 1`)
	idx5 := strings.Index(out, `"vertex": 5`)
	require.GreaterOrEqual(t, idx1, 0)
	require.GreaterOrEqual(t, idx5, 0)
	require.Less(t, idx1, idx5)
}

func TestWriteTemplateSizeReportsComponentCounts(t *testing.T) {
	tpl := template.New()
	tpl.AddUnsafeEdge(0, 1)
	tpl.AddColiveEdge(1, 2)
	tpl.AddColiveEdge(1, 3)
	g := setops.NewEdgeMap()
	g.Add(2, 3)
	tpl.AddLiveGroup(g)

	var sb strings.Builder
	require.NoError(t, WriteTemplateSize(&sb, tpl))

	out := sb.String()
	require.Contains(t, out, `"unsafe": 1`)
	require.Contains(t, out, `"co_live": 2`)
	require.Contains(t, out, `"live": [`)
}
