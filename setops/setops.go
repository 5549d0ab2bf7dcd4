package setops

import (
	"sort"

	"github.com/vparity/pargame/arena"
)

// VertexSet is a finite set of vertex ids, represented as a map for O(1)
// membership. The zero value is the empty set.
type VertexSet map[arena.VertexID]struct{}

// NewVertexSet builds a VertexSet from a slice, deduplicating.
func NewVertexSet(ids ...arena.VertexID) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Slice renders s as an ascending-sorted slice, for deterministic
// iteration and output (spec §4.1).
func (s VertexSet) Slice() []arena.VertexID {
	out := make([]arena.VertexID, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a shallow copy of s.
func (s VertexSet) Clone() VertexSet {
	out := make(VertexSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Has reports whether v ∈ s.
func (s VertexSet) Has(v arena.VertexID) bool {
	_, ok := s[v]
	return ok
}

// Union returns a ∪ b, allocating a new set.
func Union(a, b VertexSet) VertexSet {
	out := make(VertexSet, len(a)+len(b))
	for v := range a {
		out[v] = struct{}{}
	}
	for v := range b {
		out[v] = struct{}{}
	}
	return out
}

// Intersection returns a ∩ b.
func Intersection(a, b VertexSet) VertexSet {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	out := make(VertexSet, len(small))
	for v := range small {
		if _, ok := big[v]; ok {
			out[v] = struct{}{}
		}
	}
	return out
}

// Intersection3 returns a ∩ b ∩ c.
func Intersection3(a, b, c VertexSet) VertexSet {
	return Intersection(Intersection(a, b), c)
}

// Difference returns a \ b.
func Difference(a, b VertexSet) VertexSet {
	out := make(VertexSet, len(a))
	for v := range a {
		if _, ok := b[v]; !ok {
			out[v] = struct{}{}
		}
	}
	return out
}

// Complement returns universe \ s.
func Complement(universe, s VertexSet) VertexSet {
	return Difference(universe, s)
}

// IsSubset reports whether a ⊆ b.
func IsSubset(a, b VertexSet) bool {
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether a ∩ b ≠ ∅, short-circuiting on the first hit.
func Intersects(a, b VertexSet) bool {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for v := range small {
		if _, ok := big[v]; ok {
			return true
		}
	}
	return false
}

// Equal reports whether a and b contain the same vertices.
func Equal(a, b VertexSet) bool {
	if len(a) != len(b) {
		return false
	}
	return IsSubset(a, b)
}

// VertexWithColor returns the subset of universe whose arena color under
// objective equals c, grounded on Game.hpp's vertex_with_color.
func VertexWithColor(a *arena.Arena, objective int, universe VertexSet, c arena.Color) VertexSet {
	out := make(VertexSet)
	for v := range universe {
		col, err := a.Color(objective, v)
		if err == nil && col == c {
			out[v] = struct{}{}
		}
	}
	return out
}

// EdgeMap is a vertex-keyed set of target vertices, used to represent a
// subset of an arena's edge relation (e.g. the unsafe or co-live edges of
// a Template).
type EdgeMap map[arena.VertexID]VertexSet

// NewEdgeMap returns an empty EdgeMap.
func NewEdgeMap() EdgeMap { return make(EdgeMap) }

// Add inserts the edge (from, to) into m, creating from's target set if
// absent.
func (m EdgeMap) Add(from, to arena.VertexID) {
	if m[from] == nil {
		m[from] = make(VertexSet)
	}
	m[from][to] = struct{}{}
}

// Has reports whether (from, to) ∈ m.
func (m EdgeMap) Has(from, to arena.VertexID) bool {
	targets, ok := m[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// Clone returns a deep copy of m.
func (m EdgeMap) Clone() EdgeMap {
	out := make(EdgeMap, len(m))
	for v, targets := range m {
		out[v] = targets.Clone()
	}
	return out
}

// MergeEdgeMaps returns the union of m and n: for each source vertex, the union of
// its target sets (Template.hpp's edge_merge).
func MergeEdgeMaps(m, n EdgeMap) EdgeMap {
	out := m.Clone()
	for v, targets := range n {
		if out[v] == nil {
			out[v] = make(VertexSet)
		}
		for t := range targets {
			out[v][t] = struct{}{}
		}
	}
	return out
}

// RemoveSources returns m with every entry whose key (source vertex) is in
// drop removed, leaving entries for surviving sources untouched even if
// some of their targets are in drop. Used to prune co-live edges whose
// source fell into the losing region (spec §4.4: "co-live edges
// originating in V\W₀ are pruned").
func (m EdgeMap) RemoveSources(drop VertexSet) EdgeMap {
	out := make(EdgeMap, len(m))
	for v, targets := range m {
		if _, gone := drop[v]; gone {
			continue
		}
		out[v] = targets.Clone()
	}
	return out
}

// RemoveVertices returns m with every entry whose key or any target is in
// drop removed (Game.hpp's map_remove_keys + map_remove_values composed
// into one pass, since every caller in this module wants both sides
// pruned together when a vertex leaves the game).
func (m EdgeMap) RemoveVertices(drop VertexSet) EdgeMap {
	out := make(EdgeMap)
	for v, targets := range m {
		if _, gone := drop[v]; gone {
			continue
		}
		kept := Difference(targets, drop)
		if len(kept) > 0 {
			out[v] = kept
		}
	}
	return out
}

// Size returns the total number of (from, to) pairs recorded in m.
func (m EdgeMap) Size() int {
	n := 0
	for _, targets := range m {
		n += len(targets)
	}
	return n
}
