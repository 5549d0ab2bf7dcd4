package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
)

// String renders t for diagnostics (Template.hpp's print functions).
// Output order is deterministic: edges within each component are sorted
// by (from, to), and vertex sets are sorted ascending (spec §4.1).
func (t *Template) String() string {
	var sb strings.Builder
	sb.WriteString(renderEdges("unsafe", t.Unsafe))
	sb.WriteString("\n")
	sb.WriteString(renderEdges("colive", t.CoLive))
	for i, g := range t.Live {
		sb.WriteString("\n")
		sb.WriteString(renderEdges(fmt.Sprintf("live[%d]", i), g))
	}
	for i, cond := range t.CondSets {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "cond[%d]: {", i)
		for j, v := range cond.Slice() {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("} => ")
		sb.WriteString(renderEdges("", t.CondLive[i]))
	}
	return sb.String()
}

func renderEdges(label string, m setops.EdgeMap) string {
	type pair struct{ from, to arena.VertexID }
	var pairs []pair
	for from, targets := range m {
		for to := range targets {
			pairs = append(pairs, pair{from, to})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].from != pairs[j].from {
			return pairs[i].from < pairs[j].from
		}
		return pairs[i].to < pairs[j].to
	})
	var sb strings.Builder
	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}
	sb.WriteString("{")
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d->%d", p.from, p.to)
	}
	sb.WriteString("}")
	return sb.String()
}
