package templatebuilder

import (
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
)

// LiveGroupsReach implements spec §4.4's live-group reachability
// procedure: within sub-arena w, it grows a reach-target starting at t by
// repeated player-0 attractor saturation, and records one live group per
// layer — the player-0 edges from that layer's newly-admitted frontier
// (or, for layer zero, from t itself) back into the previous target. The
// procedure terminates when the reach-target covers all of w.
//
// Every player-0 vertex that picks up a live-group edge this way may
// have other outgoing edges within w that do not make progress toward t;
// those are exactly the edges a strategy may take only finitely often
// before it must fall back to its live choice, so LiveGroupsReach also
// returns them as co-live edges (S3 of spec §8: a two-vertex game with
// one progress edge and one stalling edge marks the stalling edge
// co-live).
func LiveGroupsReach(a *arena.Arena, t, w setops.VertexSet) (groups []setops.EdgeMap, coLive setops.EdgeMap) {
	coLive = setops.NewEdgeMap()
	if len(w) == 0 {
		return nil, coLive
	}
	restricted := a.Restrict(w)
	current := setops.Intersection(t, w)
	goodSucc := setops.NewEdgeMap()

	collectLayer := func(frontier setops.VertexSet) setops.EdgeMap {
		g := setops.NewEdgeMap()
		for v := range frontier {
			owner, err := restricted.Owner(v)
			if err != nil {
				arena.InvariantViolation("templatebuilder: frontier vertex missing from restricted arena")
			}
			if owner != arena.Player0 {
				continue
			}
			succ, err := restricted.Successors(v)
			if err != nil {
				arena.InvariantViolation("templatebuilder: frontier vertex has no successor list")
			}
			for _, u := range succ {
				if current.Has(u) {
					g.Add(v, u)
					goodSucc.Add(v, u)
				}
			}
		}
		return g
	}

	if g0 := collectLayer(current); g0.Size() > 0 {
		groups = append(groups, g0)
	}

	for !setops.Equal(current, w) {
		next := current.Clone()
		for _, v := range restricted.Vertices() {
			if current.Has(v) {
				continue
			}
			owner, _ := restricted.Owner(v)
			succ, _ := restricted.Successors(v)
			hits := 0
			for _, u := range succ {
				if current.Has(u) {
					hits++
				}
			}
			if (owner == arena.Player0 && hits > 0) || (owner != arena.Player0 && len(succ) > 0 && hits == len(succ)) {
				next[v] = struct{}{}
			}
		}
		frontier := setops.Difference(next, current)
		if len(frontier) == 0 {
			arena.InvariantViolation("templatebuilder: live-group reach stalled before covering its target region")
		}
		if g := collectLayer(frontier); g.Size() > 0 {
			groups = append(groups, g)
		}
		current = next
	}

	for v := range goodSucc {
		succ, err := restricted.Successors(v)
		if err != nil {
			continue
		}
		for _, u := range succ {
			if !goodSucc.Has(v, u) {
				coLive.Add(v, u)
			}
		}
	}
	return groups, coLive
}
