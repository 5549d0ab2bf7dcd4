package localview

import (
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

// View is one player-0 vertex's local specification: its outgoing
// targets partitioned into the five disjoint classes of spec §4.6, plus
// the derived Preferred class.
type View struct {
	All          setops.VertexSet
	Unsafe       setops.VertexSet
	CoLive       setops.VertexSet
	Live         setops.VertexSet
	Unrestricted setops.VertexSet
	Preferred    setops.VertexSet
}

// Build computes one View per player-0 vertex of win0, reading its
// outgoing edges from a and its constraints from tpl. Vertices outside
// win0, or not owned by player 0, are not represented: LocalView is
// defined only where player 0 has both a choice and a winning strategy
// to encode (spec §4.6: "For each player-0 vertex v in the winning
// region").
func Build(a *arena.Arena, win0 setops.VertexSet, tpl *template.Template) (map[arena.VertexID]*View, error) {
	out := make(map[arena.VertexID]*View, len(win0))
	for v := range win0 {
		owner, err := a.Owner(v)
		if err != nil {
			return nil, err
		}
		if owner != arena.Player0 {
			continue
		}
		succ, err := a.Successors(v)
		if err != nil {
			return nil, err
		}
		out[v] = buildOne(v, succ, tpl)
	}
	return out, nil
}

// buildOne partitions a single vertex's successors per spec §4.6.
func buildOne(v arena.VertexID, succ []arena.VertexID, tpl *template.Template) *View {
	all := setops.NewVertexSet(succ...)
	unsafe := setops.Intersection(all, tpl.Unsafe[v])
	coLive := setops.Difference(setops.Intersection(all, tpl.CoLive[v]), unsafe)

	liveUnion := setops.VertexSet{}
	for _, g := range tpl.Live {
		liveUnion = setops.Union(liveUnion, g[v])
	}
	live := setops.Difference(setops.Intersection(all, liveUnion), setops.Union(unsafe, coLive))

	unrestricted := setops.Difference(all, setops.Union(unsafe, setops.Union(coLive, live)))

	preferred := live
	if len(preferred) == 0 {
		preferred = unrestricted
	}

	return &View{
		All:          all,
		Unsafe:       unsafe,
		CoLive:       coLive,
		Live:         live,
		Unrestricted: unrestricted,
		Preferred:    preferred,
	}
}
