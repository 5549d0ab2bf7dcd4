package template

import "github.com/vparity/pargame/setops"

// edgeMapEqual reports whether two EdgeMaps contain exactly the same
// edges, used to recognize duplicate live groups produced by independent
// recursive branches (Template.hpp dedupes live groups via sort+unique on
// their serialized edge lists; here set equality is the direct
// equivalent).
func edgeMapEqual(a, b setops.EdgeMap) bool {
	if a.Size() != b.Size() {
		return false
	}
	for from, targets := range a {
		otherTargets, ok := b[from]
		if !ok || len(targets) != len(otherTargets) {
			return false
		}
		for to := range targets {
			if !otherTargets.Has(to) {
				return false
			}
		}
	}
	return true
}

// CleanUnsafeEdges is a no-op beyond self-documentation: Unsafe is
// already a deduplicating set, so cleaning it is the identity.
func (t *Template) CleanUnsafeEdges() {}

// CleanColiveEdges mirrors CleanUnsafeEdges for CoLive.
func (t *Template) CleanColiveEdges() {}

// CleanLiveGroups removes empty groups and collapses duplicate groups
// (Template.hpp's clean_live_groups).
func (t *Template) CleanLiveGroups() {
	out := make([]setops.EdgeMap, 0, len(t.Live))
	for _, g := range t.Live {
		if g.Size() == 0 {
			continue
		}
		dup := false
		for _, kept := range out {
			if edgeMapEqual(g, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, g)
		}
	}
	t.Live = out
}

// CleanCondLiveGroups drops entries with an empty condition or empty live
// group, then merges entries whose CondLive groups coincide by unioning
// their CondSets into one (Template.hpp's clean_cond_live_groups: it
// merges on cond_live_groups_[i] == cond_live_groups_[j], unioning
// cond_sets_[i] — two conditions that both demand the exact same live
// edges are redundant and fold into one K; two conditions with the same
// triggering vertices but different live obligations must NOT fold,
// since each vertex still independently owes its own live edge).
func (t *Template) CleanCondLiveGroups() {
	type entry struct {
		cond setops.VertexSet
		live setops.EdgeMap
	}
	var merged []entry
	for i, cond := range t.CondSets {
		if len(cond) == 0 || t.CondLive[i].Size() == 0 {
			continue
		}
		placed := false
		for j := range merged {
			if edgeMapEqual(merged[j].live, t.CondLive[i]) {
				merged[j].cond = setops.Union(merged[j].cond, cond)
				placed = true
				break
			}
		}
		if !placed {
			merged = append(merged, entry{cond: cond, live: t.CondLive[i]})
		}
	}
	t.CondSets = t.CondSets[:0]
	t.CondLive = t.CondLive[:0]
	for _, e := range merged {
		t.CondSets = append(t.CondSets, e.cond)
		t.CondLive = append(t.CondLive, e.live)
	}
}

// Clean runs every Clean* pass in sequence (Template.hpp's clean).
func (t *Template) Clean() {
	t.CleanUnsafeEdges()
	t.CleanColiveEdges()
	t.CleanLiveGroups()
	t.CleanCondLiveGroups()
}

// Clear resets t to the empty template in place.
func (t *Template) Clear() {
	t.Unsafe = setops.NewEdgeMap()
	t.CoLive = setops.NewEdgeMap()
	t.Live = nil
	t.CondSets = nil
	t.CondLive = nil
}
