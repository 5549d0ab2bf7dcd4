package arena

import "sort"

// Restrict returns a new Arena containing only the vertices in keep and the
// edges between them, with owners and colors copied verbatim. It never
// mutates the receiver (spec §9, "arena-and-views"), so the same parent
// Arena can be restricted independently and concurrently by several
// Composer goroutines.
//
// Restrict does not require the result to satisfy Validate: a restricted
// region may legitimately contain dead-ends (e.g. the complement of an
// attractor), which downstream algorithms account for explicitly.
func (a *Arena) Restrict(keep map[VertexID]struct{}) *Arena {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := &Arena{
		numObjectives: a.numObjectives,
		vertices:      make(map[VertexID]struct{}, len(keep)),
		owner:         make(map[VertexID]Owner, len(keep)),
		colors:        make([]map[VertexID]Color, a.numObjectives),
		edges:         make(map[VertexID]map[VertexID]struct{}, len(keep)),
		labels:        make(map[VertexID]string),
	}
	for i := range out.colors {
		out.colors[i] = make(map[VertexID]Color, len(keep))
	}

	for v := range keep {
		if _, ok := a.vertices[v]; !ok {
			continue
		}
		out.vertices[v] = struct{}{}
		out.owner[v] = a.owner[v]
		for i := range a.colors {
			out.colors[i][v] = a.colors[i][v]
		}
		if lbl, ok := a.labels[v]; ok {
			out.labels[v] = lbl
		}
	}
	for v := range out.vertices {
		succ := make(map[VertexID]struct{})
		for u := range a.edges[v] {
			if _, ok := out.vertices[u]; ok {
				succ[u] = struct{}{}
			}
		}
		out.edges[v] = succ
	}
	if a.hasInitial {
		if _, ok := out.vertices[a.initial]; ok {
			out.initial = a.initial
			out.hasInitial = true
		}
	}
	return out
}

// Clone returns a deep copy of a, independent of further mutation to
// either value.
func (a *Arena) Clone() *Arena {
	return a.Restrict(a.vertexSet())
}

// vertexSet returns a copy of every vertex id as a set, for use as
// Restrict's keep argument.
func (a *Arena) vertexSet() map[VertexID]struct{} {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[VertexID]struct{}, len(a.vertices))
	for v := range a.vertices {
		out[v] = struct{}{}
	}
	return out
}

// sortedKeys renders a deterministic, ascending vertex-id slice from a
// set-shaped map. No file of the package calls it at present.
func sortedKeys(m map[VertexID]struct{}) []VertexID {
	out := make([]VertexID, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
