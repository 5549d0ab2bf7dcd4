package attractor

import (
	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
)

// Coalition is a subset of {Player0, Player1} — the set P in spec §4.2's
// Attr(A, T, P). An owner in the coalition needs only one edge into the
// growing region to be admitted; an owner outside it needs every edge to
// land in the region (it has no escape). The empty coalition therefore
// computes the "no escape for anyone" closure used by the composer's
// joint-losing-region step (spec §4.5 step 3).
type Coalition map[arena.Owner]bool

// Of builds a Coalition from the given owners.
func Of(owners ...arena.Owner) Coalition {
	c := make(Coalition, len(owners))
	for _, o := range owners {
		c[o] = true
	}
	return c
}

// Attr computes Attr_player(target) for the single-player coalition
// {player} — the common case used by paritysolver and templatebuilder.
func Attr(a *arena.Arena, target setops.VertexSet, player arena.Owner) setops.VertexSet {
	return AttrCoalition(a, target, Of(player))
}

// AttrCoalition computes Attr(A, target, players): the smallest superset
// of target such that every coalition-owned vertex with an edge into the
// set, and every non-coalition-owned vertex whose every edge leads into
// the set, is itself in the set (Game.hpp's solve_reachability_game core
// loop, generalized to an arbitrary player subset for MultiGame.hpp's
// empty-coalition joint-losing-region use).
//
// The computation runs as a worklist over the arena's reverse adjacency,
// mirroring the teacher's walker-struct BFS (bfs/bfs.go): vertices enter
// a queue the moment they are added to the region, and are processed
// exactly once.
func AttrCoalition(a *arena.Arena, target setops.VertexSet, players Coalition) setops.VertexSet {
	region := target.Clone()
	pred := reversePredecessors(a)

	remaining := make(map[arena.VertexID]int)
	queue := make([]arena.VertexID, 0, len(target))
	for v := range target {
		queue = append(queue, v)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range pred[v] {
			if region.Has(u) {
				continue
			}
			owner, err := a.Owner(u)
			if err != nil {
				arena.InvariantViolation("attractor: predecessor missing from arena")
			}
			if players[owner] {
				region[u] = struct{}{}
				queue = append(queue, u)
				continue
			}
			if _, seen := remaining[u]; !seen {
				remaining[u] = a.OutDegree(u)
			}
			remaining[u]--
			if remaining[u] <= 0 {
				region[u] = struct{}{}
				queue = append(queue, u)
			}
		}
	}
	return region
}

// reversePredecessors builds the reverse adjacency of a: for each vertex,
// the list of vertices with an edge into it. Attractor computation needs
// this direction repeatedly, so it is built once per call rather than
// re-derived per vertex.
func reversePredecessors(a *arena.Arena) map[arena.VertexID][]arena.VertexID {
	pred := make(map[arena.VertexID][]arena.VertexID)
	for _, v := range a.Vertices() {
		succ, err := a.Successors(v)
		if err != nil {
			arena.InvariantViolation("attractor: vertex disappeared mid-scan")
		}
		for _, u := range succ {
			pred[u] = append(pred[u], v)
		}
	}
	return pred
}

// Witness is Attr's region together with a canonical strategy choice for
// every coalition-owned vertex: the successor whose admission triggered
// its inclusion.
type Witness struct {
	Region  setops.VertexSet
	Choices map[arena.VertexID]arena.VertexID
}

// AttrWithWitness is Attr plus a strategy choice for every player-owned
// vertex added to the region.
func AttrWithWitness(a *arena.Arena, target setops.VertexSet, player arena.Owner) Witness {
	region := target.Clone()
	choices := make(map[arena.VertexID]arena.VertexID)
	pred := reversePredecessors(a)

	remaining := make(map[arena.VertexID]int)
	queue := make([]arena.VertexID, 0, len(target))
	for v := range target {
		queue = append(queue, v)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range pred[v] {
			if region.Has(u) {
				continue
			}
			owner, err := a.Owner(u)
			if err != nil {
				arena.InvariantViolation("attractor: predecessor missing from arena")
			}
			if owner == player {
				region[u] = struct{}{}
				choices[u] = v
				queue = append(queue, u)
				continue
			}
			if _, seen := remaining[u]; !seen {
				remaining[u] = a.OutDegree(u)
			}
			remaining[u]--
			if remaining[u] <= 0 {
				region[u] = struct{}{}
				queue = append(queue, u)
			}
		}
	}
	return Witness{Region: region, Choices: choices}
}
