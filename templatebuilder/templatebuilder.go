package templatebuilder

import (
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/attractor"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

// DefaultMaxRecursionDepth mirrors paritysolver's bound; the two
// recursions share the same termination argument (spec §9).
const DefaultMaxRecursionDepth = 128

// Result is the outcome of a single-objective template build: the
// winning partition plus the strategy template witnessing player 0's
// side of it.
type Result struct {
	Win0     setops.VertexSet
	Win1     setops.VertexSet
	Template *template.Template
}

// Build runs BuildDepth with DefaultMaxRecursionDepth.
func Build(a *arena.Arena, view arena.ColorView) (Result, error) {
	return BuildDepth(a, view, DefaultMaxRecursionDepth)
}

// BuildDepth is Build with an explicit recursion-depth bound.
func BuildDepth(a *arena.Arena, view arena.ColorView, maxDepth int) (result Result, err error) {
	defer arena.RecoverInvariantViolation(&err)
	win0, win1, tpl := recurse(a, view, maxDepth, 0)
	finalized := finalize(a, tpl, win0, win1)
	return Result{Win0: win0, Win1: win1, Template: finalized}, nil
}

// finalize applies spec §4.4's top-level cleanup: unsafe edges are the
// player-0 edges from the overall winning region into the losing region,
// and co-live edges whose source ended up losing are pruned.
func finalize(a *arena.Arena, tpl *template.Template, win0, win1 setops.VertexSet) *template.Template {
	unsafe := player0EdgesInto(a, win0, win1)
	out := &template.Template{
		Unsafe:   unsafe,
		CoLive:   tpl.CoLive.RemoveSources(win1),
		Live:     tpl.Live,
		CondSets: tpl.CondSets,
		CondLive: tpl.CondLive,
	}
	out.Clean()
	return out
}

func verticesWithColor(view arena.ColorView, universe setops.VertexSet, c arena.Color) setops.VertexSet {
	out := make(setops.VertexSet)
	for v := range universe {
		col, err := view.Color(v)
		if err != nil {
			arena.InvariantViolation("templatebuilder: vertex missing from color view")
		}
		if col == c {
			out[v] = struct{}{}
		}
	}
	return out
}

// player0EdgesInto returns the player-0 edges with source in from and
// target in into, evaluated against a's (not a restricted sub-arena's)
// full adjacency, since the even branch's co-live edges and finalize's
// unsafe edges span a region boundary at the current level, not the
// inside of either sub-arena alone.
func player0EdgesInto(a *arena.Arena, from, into setops.VertexSet) setops.EdgeMap {
	m := setops.NewEdgeMap()
	for v := range from {
		owner, err := a.Owner(v)
		if err != nil || owner != arena.Player0 {
			continue
		}
		succ, err := a.Successors(v)
		if err != nil {
			continue
		}
		for _, u := range succ {
			if into.Has(u) {
				m.Add(v, u)
			}
		}
	}
	return m
}

func withCoLive(m setops.EdgeMap) *template.Template {
	t := template.New()
	t.CoLive = m
	return t
}

func withLiveGroups(groups []setops.EdgeMap) *template.Template {
	t := template.New()
	t.Live = groups
	return t
}

// recurse mirrors paritysolver.recurse's control flow exactly, adding
// template bookkeeping at each branch (spec §4.4).
func recurse(a *arena.Arena, view arena.ColorView, maxDepth, depth int) (setops.VertexSet, setops.VertexSet, *template.Template) {
	verts := setops.NewVertexSet(a.Vertices()...)
	if len(verts) == 0 {
		return setops.VertexSet{}, setops.VertexSet{}, template.New()
	}
	if depth > maxDepth {
		arena.InvariantViolation("templatebuilder: recursion depth exceeded")
	}

	maxColor := view.Max()
	p := arena.Player1
	if maxColor%2 == 0 {
		p = arena.Player0
	}

	top := verticesWithColor(view, verts, maxColor)
	r := attractor.Attr(a, top, p)
	rest := setops.Difference(verts, r)

	subArena := a.Restrict(rest)
	subView := view.Restrict(rest)
	w0sub, w1sub, subTpl := recurse(subArena, subView, maxDepth, depth+1)

	if p == arena.Player0 {
		return evenBranch(a, verts, r, top, w1sub, subTpl, maxDepth, depth, view)
	}
	return oddBranch(a, verts, r, w0sub, subTpl, maxDepth, depth, view)
}

func evenBranch(a *arena.Arena, verts, r, top, w1sub setops.VertexSet, subTpl *template.Template, maxDepth, depth int, view arena.ColorView) (setops.VertexSet, setops.VertexSet, *template.Template) {
	if len(w1sub) == 0 {
		groups, coLive := LiveGroupsReach(a, top, r)
		tpl := subTpl.Merge(withLiveGroups(groups)).Merge(withCoLive(coLive))
		return verts, setops.VertexSet{}, tpl
	}

	b := attractor.Attr(a, w1sub, arena.Player1)
	rest2 := setops.Difference(verts, b)
	coLive := player0EdgesInto(a, b, rest2)

	subArena2 := a.Restrict(rest2)
	subView2 := view.Restrict(rest2)
	w0pp, w1pp, tpl2 := recurse(subArena2, subView2, maxDepth, depth+1)

	tpl := tpl2.Merge(withCoLive(coLive))
	return w0pp, setops.Union(w1pp, b), tpl
}

func oddBranch(a *arena.Arena, verts, r, w0sub setops.VertexSet, subTpl *template.Template, maxDepth, depth int, view arena.ColorView) (setops.VertexSet, setops.VertexSet, *template.Template) {
	if len(w0sub) == 0 {
		return setops.VertexSet{}, verts, subTpl
	}

	b := attractor.Attr(a, w0sub, arena.Player0)
	rest2 := setops.Difference(verts, b)
	liveGroups, coLive := LiveGroupsReach(a, w0sub, b)

	subArena2 := a.Restrict(rest2)
	subView2 := view.Restrict(rest2)
	w0pp, w1pp, tpl2 := recurse(subArena2, subView2, maxDepth, depth+1)

	tpl := tpl2.Merge(withCoLive(coLive)).Merge(withLiveGroups(liveGroups))
	return setops.Union(w0pp, b), w1pp, tpl
}
