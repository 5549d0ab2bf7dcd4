package composer

import (
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

// allEdgesWithin reports whether every one of v's outgoing edges (per a)
// lands in within.
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

// saturatingColive implements spec §4.5 step 5's first conflict rule:
// any vertex whose complete outgoing edge-set is contained in the
// merged template's co-live edges must itself become co-live next
// iteration, since player 0 has no choice left there that is not
// already bounded to finitely-often use.
func saturatingColive(a *arena.Arena, verts setops.VertexSet, tpl *template.Template) setops.VertexSet {
	out := make(setops.VertexSet)
	for v := range verts {
		succ, err := a.Successors(v)
		if err != nil || len(succ) == 0 {
			continue
		}
		allColive := true
		for _, u := range succ {
			if !tpl.CoLive.Has(v, u) {
				allColive = false
				break
			}
		}
		if allColive {
			out[v] = struct{}{}
		}
	}
	return out
}

// liveVsColive implements spec §4.5 step 5's second conflict rule: for
// any live group g and vertex v with an entry in g, if every one of
// v's choices recorded in g is also co-live, v cannot honor that
// obligation finitely-then-forever and must become co-live.
func liveVsColive(tpl *template.Template) setops.VertexSet {
	out := make(setops.VertexSet)
	for _, g := range tpl.Live {
		for v, targets := range g {
			if len(targets) == 0 {
				continue
			}
			allColive := true
			for u := range targets {
				if !tpl.CoLive.Has(v, u) {
					allColive = false
					break
				}
			}
			if allColive {
				out[v] = struct{}{}
			}
		}
	}
	return out
}

// overestimatedWinning implements spec §4.5 step 7's unsafe conflict
// check: a player-0 vertex in the claimed winning region is actually
// losing if every edge, or every edge of some live group, drains into
// losing ∪ co-live.
func overestimatedWinning(a *arena.Arena, winning, losing setops.VertexSet, tpl *template.Template) setops.VertexSet {
	out := make(setops.VertexSet)
	for v := range winning {
		owner, err := a.Owner(v)
		if err != nil || owner != arena.Player0 {
			continue
		}
		bad := setops.Union(losing, tpl.CoLive[v])
		if allEdgesWithin(a, v, bad) {
			out[v] = struct{}{}
			continue
		}
		for _, g := range tpl.Live {
			targets, ok := g[v]
			if !ok || len(targets) == 0 {
				continue
			}
			if setops.IsSubset(targets, bad) {
				out[v] = struct{}{}
				break
			}
		}
	}
	return out
}

// finalizeTemplate implements spec §4.5 step 7's finalize path: strip
// losing-region keys from co-live, subtract each live group's co-live
// choices at every source (a live source always has another choice once
// finalized), drop losing keys from live groups, compute unsafe edges
// from winning to losing, and deduplicate.
func finalizeTemplate(a *arena.Arena, winning, losing setops.VertexSet, tpl *template.Template) *template.Template {
	coLive := tpl.CoLive.RemoveSources(losing)

	live := make([]setops.EdgeMap, 0, len(tpl.Live))
	for _, g := range tpl.Live {
		out := setops.NewEdgeMap()
		for v, targets := range g {
			if losing.Has(v) {
				continue
			}
			kept := setops.Difference(targets, coLive[v])
			if len(kept) > 0 {
				out[v] = kept
			}
		}
		if out.Size() > 0 {
			live = append(live, out)
		}
	}

	unsafe := setops.NewEdgeMap()
	for v := range winning {
		owner, err := a.Owner(v)
		if err != nil || owner != arena.Player0 {
			continue
		}
		succ, err := a.Successors(v)
		if err != nil {
			continue
		}
		for _, u := range succ {
			if losing.Has(u) {
				unsafe.Add(v, u)
			}
		}
	}

	out := &template.Template{
		Unsafe:   unsafe,
		CoLive:   coLive,
		Live:     live,
		CondSets: tpl.CondSets,
		CondLive: tpl.CondLive,
	}
	out.Clean()
	return out
}
