package template

import "github.com/vparity/pargame/setops"

// Template is the permissive winning-strategy template of spec §3.
//
//   - Unsafe (U): edges a winning strategy must never take.
//   - CoLive (C): edges a winning strategy may take only finitely often.
//   - Live (L): groups of edges, each required to be taken infinitely
//     often by any strategy that also respects Unsafe and CoLive.
//   - CondSets (K) / CondLive (CL): generalized-parity obligations of the
//     form "if K_i is visited infinitely often, then CL_i must be taken
//     infinitely often too" — parallel slices, CondLive[i] conditioned on
//     CondSets[i].
//
// The zero value is the template with no constraints at all (every
// strategy is permitted), the identity element of Merge.
type Template struct {
	Unsafe   setops.EdgeMap
	CoLive   setops.EdgeMap
	Live     []setops.EdgeMap
	CondSets []setops.VertexSet
	CondLive []setops.EdgeMap
}

// New returns an empty Template.
func New() *Template {
	return &Template{
		Unsafe: setops.NewEdgeMap(),
		CoLive: setops.NewEdgeMap(),
	}
}

// SizeUnsafe returns |U|.
func (t *Template) SizeUnsafe() int { return t.Unsafe.Size() }

// SizeColive returns |C|.
func (t *Template) SizeColive() int { return t.CoLive.Size() }

// SizeLive returns Σ|L_i| over all live groups.
func (t *Template) SizeLive() int {
	n := 0
	for _, g := range t.Live {
		n += g.Size()
	}
	return n
}

// SizeCondLive returns Σ|CL_i| over all conditional live groups.
func (t *Template) SizeCondLive() int {
	n := 0
	for _, g := range t.CondLive {
		n += g.Size()
	}
	return n
}

// AddUnsafeEdge records (from, to) as unsafe.
func (t *Template) AddUnsafeEdge(from, to uint64) { t.Unsafe.Add(from, to) }

// AddColiveEdge records (from, to) as co-live.
func (t *Template) AddColiveEdge(from, to uint64) { t.CoLive.Add(from, to) }

// AddLiveGroup appends g as a new live group.
func (t *Template) AddLiveGroup(g setops.EdgeMap) { t.Live = append(t.Live, g) }

// AddCondLiveGroup appends the obligation "cond infinitely often ⇒ live
// infinitely often".
func (t *Template) AddCondLiveGroup(cond setops.VertexSet, live setops.EdgeMap) {
	t.CondSets = append(t.CondSets, cond)
	t.CondLive = append(t.CondLive, live)
}

// Merge returns a new Template combining t and other: unsafe and co-live
// edges union, live groups and conditional live groups concatenate
// (Template.hpp's merge, single-other overload).
func (t *Template) Merge(other *Template) *Template {
	out := &Template{
		Unsafe: setops.MergeEdgeMaps(t.Unsafe, other.Unsafe),
		CoLive: setops.MergeEdgeMaps(t.CoLive, other.CoLive),
	}
	out.Live = append(append([]setops.EdgeMap{}, t.Live...), other.Live...)
	out.CondSets = append(append([]setops.VertexSet{}, t.CondSets...), other.CondSets...)
	out.CondLive = append(append([]setops.EdgeMap{}, t.CondLive...), other.CondLive...)
	return out
}

// MergeAll folds Merge over ts, returning an empty Template for ts == nil
// (Template.hpp's vector-of-templates merge overload).
func MergeAll(ts []*Template) *Template {
	out := New()
	for _, t := range ts {
		out = out.Merge(t)
	}
	return out
}

// EdgeMerge unions only the unsafe and co-live components of t and other,
// leaving live groups untouched — used when two templates describe the
// same objective's restrictions from different branches of a recursive
// solve and only their edge restrictions, not their liveness
// obligations, should combine.
func (t *Template) EdgeMerge(other *Template) *Template {
	out := &Template{
		Unsafe:   setops.MergeEdgeMaps(t.Unsafe, other.Unsafe),
		CoLive:   setops.MergeEdgeMaps(t.CoLive, other.CoLive),
		Live:     t.Live,
		CondSets: t.CondSets,
		CondLive: t.CondLive,
	}
	return out
}

// MergeLiveColive merges the live groups of two templates targeting the
// same objective into a single set of groups, deduplicating groups that
// are pairwise equal after Clean (Template.hpp's merge_live_colive).
func (t *Template) MergeLiveColive(other *Template) *Template {
	out := t.EdgeMerge(other)
	out.Live = append(append([]setops.EdgeMap{}, t.Live...), other.Live...)
	out.Clean()
	return out
}
