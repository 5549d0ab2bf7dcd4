package paritysolver

import (
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/attractor"
	"github.com/vparity/pargame/setops"
)

// DefaultMaxRecursionDepth bounds Zielonka's recursion to guard against
// an unbounded color range producing unbounded recursion (spec §9,
// "recursion depth bound"). Real games recurse at most once per distinct
// color, so this is generous for any game with a sane color range.
const DefaultMaxRecursionDepth = 128

// Result is the partition of an arena's vertices into player-0 and
// player-1 winning regions.
type Result struct {
	Win0 setops.VertexSet
	Win1 setops.VertexSet
}

// Solve computes the winning regions of a under the max-even parity
// condition seen through view, using DefaultMaxRecursionDepth.
func Solve(a *arena.Arena, view arena.ColorView) (Result, error) {
	return SolveDepth(a, view, DefaultMaxRecursionDepth)
}

// SolveDepth is Solve with an explicit recursion-depth bound, for callers
// that want a tighter or looser bound than the default.
func SolveDepth(a *arena.Arena, view arena.ColorView, maxDepth int) (result Result, err error) {
	defer arena.RecoverInvariantViolation(&err)
	w0, w1 := recurse(a, view, maxDepth, 0)
	return Result{Win0: w0, Win1: w1}, nil
}

func other(p arena.Owner) arena.Owner {
	if p == arena.Player0 {
		return arena.Player1
	}
	return arena.Player0
}

// verticesWithColor returns the subset of universe whose effective color
// under view equals c.
func verticesWithColor(view arena.ColorView, universe setops.VertexSet, c arena.Color) setops.VertexSet {
	out := make(setops.VertexSet)
	for v := range universe {
		col, err := view.Color(v)
		if err != nil {
			arena.InvariantViolation("paritysolver: vertex missing from color view")
		}
		if col == c {
			out[v] = struct{}{}
		}
	}
	return out
}

// recurse implements Game.hpp's recursive_zielonka_parity. It returns
// (win0, win1) over the vertex set of a.
func recurse(a *arena.Arena, view arena.ColorView, maxDepth, depth int) (setops.VertexSet, setops.VertexSet) {
	verts := setops.NewVertexSet(a.Vertices()...)
	if len(verts) == 0 {
		return setops.VertexSet{}, setops.VertexSet{}
	}
	if depth > maxDepth {
		arena.InvariantViolation("paritysolver: recursion depth exceeded")
	}

	maxColor := view.Max()
	p := arena.Player1
	if maxColor%2 == 0 {
		p = arena.Player0
	}
	opp := other(p)

	top := verticesWithColor(view, verts, maxColor)
	attr := attractor.Attr(a, top, p)
	rest := setops.Difference(verts, attr)

	subArena := a.Restrict(rest)
	subView := view.Restrict(rest)
	w0sub, w1sub := recurse(subArena, subView, maxDepth, depth+1)
	_, woppSub := pick(p, w0sub, w1sub)

	if len(woppSub) == 0 {
		return assign(p, verts, setops.VertexSet{})
	}

	oppAttr := attractor.Attr(a, woppSub, opp)
	remaining := setops.Difference(verts, oppAttr)

	remArena := a.Restrict(remaining)
	remView := view.Restrict(remaining)
	w0rem, w1rem := recurse(remArena, remView, maxDepth, depth+1)
	wpRem, woppRem := pick(p, w0rem, w1rem)

	return assign(p, wpRem, setops.Union(oppAttr, woppRem))
}

// pick returns (p's region, opponent's region) from a (win0, win1) pair.
func pick(p arena.Owner, win0, win1 setops.VertexSet) (setops.VertexSet, setops.VertexSet) {
	if p == arena.Player0 {
		return win0, win1
	}
	return win1, win0
}

// assign is pick's inverse: given p's region and the opponent's region,
// returns (win0, win1).
func assign(p arena.Owner, pRegion, oppRegion setops.VertexSet) (setops.VertexSet, setops.VertexSet) {
	if p == arena.Player0 {
		return pRegion, oppRegion
	}
	return oppRegion, pRegion
}
