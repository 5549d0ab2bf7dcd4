package puf

import (
	"fmt"
	"sort"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/randcolor"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

type edge struct {
	from, to arena.VertexID
}

func flattenEdges(a *arena.Arena) []edge {
	var out []edge
	for _, v := range a.Vertices() {
		succ, err := a.Successors(v)
		if err != nil {
			continue
		}
		for _, u := range succ {
			out = append(out, edge{v, u})
		}
	}
	return out
}

// GenerateEdges draws num = 1 + floor(len(edges)*percentage/100) distinct
// edges of a uniformly without replacement, deterministically from seed,
// following MultiGame.hpp's generate_PUF_edges.
func GenerateEdges(a *arena.Arena, percentage float64, seed int64) (setops.EdgeMap, error) {
	if percentage < 0 {
		return nil, fmt.Errorf("puf: GenerateEdges: percentage must be >= 0, got %v", percentage)
	}
	all := flattenEdges(a)
	num := 1 + int(float64(len(all))*percentage/100)
	if num > len(all) {
		num = len(all)
	}

	rng := randcolor.RNGFromSeed(seed)
	remaining := append([]edge(nil), all...)
	picked := setops.NewEdgeMap()
	for i := 0; i < num && len(remaining) > 0; i++ {
		idx := rng.Intn(len(remaining))
		e := remaining[idx]
		picked.Add(e.from, e.to)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picked, nil
}

// allEdgesWithin reports whether every one of v's outgoing edges lands in
// within, matching composer's own helper of the same name.
func allEdgesWithin(a *arena.Arena, v arena.VertexID, within setops.VertexSet) bool {
	succ, err := a.Successors(v)
	if err != nil || len(succ) == 0 {
		return false
	}
	for _, u := range succ {
		if !within.Has(u) {
			return false
		}
	}
	return true
}

// CheckImplementable reports whether tpl — the strategy template already
// computed for win0/win1 — survives the permanent loss of the edges in
// unavailable. It mirrors MultiGame.hpp's two-stage PUF check:
//
//  1. compute_dead_ends: fold unavailable into the losing region by
//     fixpoint — any vertex whose every outgoing edge drains into the
//     (growing) losing region or an unavailable edge is itself doomed,
//     regardless of owner (an unavailable edge is a dead end for
//     whichever player was relying on it).
//  2. conflicts_recomputation_PUF_parity's saturation check: once the
//     fixpoint settles, any surviving winning vertex whose every edge
//     drains into losing ∪ tpl.CoLive is a genuine conflict — the
//     template can no longer be realized as written.
//
// The returned slice is sorted ascending and empty iff implementable is
// true.
func CheckImplementable(a *arena.Arena, win0, win1 setops.VertexSet, tpl *template.Template, unavailable setops.EdgeMap) (bool, []arena.VertexID) {
	universe := setops.Union(win0, win1)
	losing := win1.Clone()

	for {
		winning := setops.Difference(universe, losing)
		changed := false
		for v := range winning {
			if allEdgesWithin(a, v, setops.Union(losing, unavailable[v])) {
				losing[v] = struct{}{}
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	winning := setops.Difference(universe, losing)
	var conflicts []arena.VertexID
	for v := range winning {
		if allEdgesWithin(a, v, setops.Union(losing, tpl.CoLive[v])) {
			conflicts = append(conflicts, v)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })

	return len(conflicts) == 0, conflicts
}

// ConditionOnUnavailability derives the conditional-live-group obligation
// (tpl's K/CL, spec §4.7's Open Question) that unavailable induces on
// tpl's existing live groups, and appends one conditional group per
// affected live group via tpl.AddCondLiveGroup.
//
// For each live group g, K is the set of g's source vertices that lose at
// least one of their g-edges to unavailable, and CL is those same
// vertices' surviving (still-available) g-edges. The reading: "if a
// vertex in K is visited infinitely often (forced, since PUF left it no
// other live-group choice), the strategy must still take one of CL's
// edges infinitely often" — the natural generalized-parity obligation a
// permanently-unavailable edge leaves behind, which is why spec.md §4.7's
// Open Question names PUF as K/CL's intended populator rather than the
// core solvers.
func ConditionOnUnavailability(tpl *template.Template, unavailable setops.EdgeMap) {
	for _, g := range tpl.Live {
		cond := setops.VertexSet{}
		live := setops.NewEdgeMap()
		for from, tos := range g {
			lostAny := false
			for to := range tos {
				if unavailable.Has(from, to) {
					lostAny = true
					break
				}
			}
			if !lostAny {
				continue
			}
			cond[from] = struct{}{}
			for to := range tos {
				if !unavailable.Has(from, to) {
					live.Add(from, to)
				}
			}
		}
		if len(cond) > 0 {
			tpl.AddCondLiveGroup(cond, live)
		}
	}
}
