package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

// actionName renders a successor vertex as an "action": its edge-node
// label if --print-actions is set and v is an edge-node, else its raw id
// (spec.md §9's "edge-node projection": "an action is named either by its
// label expression or by its unique successor id").
func actionName(a *arena.Arena, v arena.VertexID, printActions bool) string {
	if printActions {
		if owner, err := a.Owner(v); err == nil && owner == arena.EdgeNode {
			if label := a.Label(v); label != "" {
				return label
			}
		}
	}
	return fmt.Sprintf("%d", v)
}

func printWinningRegion(w io.Writer, win0, win1 setops.VertexSet) {
	fmt.Fprintf(w, "winning for player 0: %v\n", win0.Slice())
	fmt.Fprintf(w, "winning for player 1: %v\n", win1.Slice())
}

func printTemplate(w io.Writer, a *arena.Arena, tpl *template.Template, printActions bool) {
	fmt.Fprintln(w, "unsafe:")
	printEdgeMap(w, a, tpl.Unsafe, printActions)
	fmt.Fprintln(w, "co-live:")
	printEdgeMap(w, a, tpl.CoLive, printActions)
	for i, g := range tpl.Live {
		fmt.Fprintf(w, "live[%d]:\n", i)
		printEdgeMap(w, a, g, printActions)
	}
	for i, g := range tpl.CondLive {
		fmt.Fprintf(w, "cond-live[%d] (conditioned on %v):\n", i, tpl.CondSets[i].Slice())
		printEdgeMap(w, a, g, printActions)
	}
}

func printEdgeMap(w io.Writer, a *arena.Arena, m setops.EdgeMap, printActions bool) {
	froms := make([]arena.VertexID, 0, len(m))
	for from := range m {
		froms = append(froms, from)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })
	for _, from := range froms {
		tos := m[from].Slice()
		for _, to := range tos {
			fmt.Fprintf(w, "  %d -> %s\n", from, actionName(a, to, printActions))
		}
	}
}
