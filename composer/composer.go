// Package composer's entry points solve every objective of a generalized
// parity game and fold the per-objective templates into one.
package composer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/attractor"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
	"github.com/vparity/pargame/templatebuilder"
)

// DefaultMaxRecursionDepth bounds every per-objective ParitySolver-style
// recursion the composer launches (spec §9).
const DefaultMaxRecursionDepth = templatebuilder.DefaultMaxRecursionDepth

// DefaultMaxIterations bounds the main conflict-resolution loop of spec
// §4.5. An iteration may shrink the arena, or keep it and only replace the
// co-live set, so this is a generous fixed number rather than a bound
// derived from the vertex count, existing only to turn a logic bug into a
// diagnosable InvariantViolation instead of a silent hang.
const DefaultMaxIterations = 4096

// Result is the outcome of composing every objective's template: the
// jointly winning partition for player 0 plus the merged, finalized
// template witnessing it.
type Result struct {
	Win0     setops.VertexSet
	Win1     setops.VertexSet
	Template *template.Template
}

// Solve composes all of a's objectives with DefaultMaxRecursionDepth and
// DefaultMaxIterations.
func Solve(ctx context.Context, a *arena.Arena) (Result, error) {
	return SolveDepth(ctx, a, DefaultMaxRecursionDepth, DefaultMaxIterations)
}

// SolveDepth is Solve with explicit bounds. For a single-objective arena
// it delegates straight to templatebuilder.BuildDepth (spec §4.5: the
// composer's main loop only has work to do when n ≥ 2).
func SolveDepth(ctx context.Context, a *arena.Arena, maxDepth, maxIterations int) (result Result, err error) {
	defer arena.RecoverInvariantViolation(&err)

	if a.NumObjectives() == 1 {
		r, buildErr := templatebuilder.BuildDepth(a, arena.NewColorView(a, 0), maxDepth)
		if buildErr != nil {
			return Result{}, buildErr
		}
		return Result{Win0: r.Win0, Win1: r.Win1, Template: r.Template}, nil
	}

	cur := a
	colive := setops.VertexSet{}
	universe := setops.NewVertexSet(a.Vertices()...)
	losingCum := setops.VertexSet{}

	for iter := 0; ; iter++ {
		if iter > maxIterations {
			arena.InvariantViolation("composer: conflict-resolution loop exceeded its iteration bound")
		}

		outs, err := solveObjectives(ctx, cur, colive, maxDepth)
		if err != nil {
			return Result{}, err
		}

		losingUnion := setops.VertexSet{}
		merged := template.New()
		for _, o := range outs {
			losingUnion = setops.Union(losingUnion, o.Win1)
			merged = merged.Merge(o.Template)
		}

		newlyLosing := attractor.AttrCoalition(cur, losingUnion, attractor.Coalition{})
		losingCum = setops.Union(losingCum, newlyLosing)
		winning := setops.Difference(setops.NewVertexSet(cur.Vertices()...), newlyLosing)

		nextColive := setops.Union(saturatingColive(cur, winning, merged), liveVsColive(merged))
		nextColive = setops.Difference(nextColive, newlyLosing)

		if len(nextColive) == 0 {
			bad := overestimatedWinning(cur, winning, newlyLosing, merged)
			if len(bad) > 0 {
				losingCum = setops.Union(losingCum, bad)
				remaining := setops.Difference(setops.NewVertexSet(cur.Vertices()...), setops.Union(newlyLosing, bad))
				cur = cur.Restrict(remaining)
				colive = setops.VertexSet{}
				continue
			}

			finalWin1 := setops.Intersection(losingCum, universe)
			finalWin0 := setops.Difference(universe, finalWin1)
			finalized := finalizeTemplate(a, finalWin0, finalWin1, merged)
			return Result{Win0: finalWin0, Win1: finalWin1, Template: finalized}, nil
		}

		remaining := setops.Difference(setops.NewVertexSet(cur.Vertices()...), newlyLosing)
		cur = cur.Restrict(remaining)
		colive = setops.Difference(nextColive, newlyLosing)
	}
}

// objectiveOutcome is one objective's BuildDepth result; parallel solves
// store it at the objective's own position in the result slice.
type objectiveOutcome struct {
	Win0, Win1 setops.VertexSet
	Template   *template.Template
}

// solveObjectives runs templatebuilder.BuildDepth once per objective of
// cur, in parallel (the reads are independent), each with colive painted
// to its own max-odd ceiling (spec §4.5 step 2). Grounded on
// vanderheijden86-beadwork's loader.go, which fans out independent
// per-file parses with golang.org/x/sync/errgroup and collects results
// into a pre-sized slice indexed by the original position.
func solveObjectives(ctx context.Context, cur *arena.Arena, colive setops.VertexSet, maxDepth int) ([]objectiveOutcome, error) {
	n := cur.NumObjectives()
	out := make([]objectiveOutcome, n)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			view := arena.NewColorView(cur, i)
			if len(colive) > 0 {
				ceiling := maxOddCeiling(cur.MaxColor(i))
				override := make(map[arena.VertexID]arena.Color, len(colive))
				for v := range colive {
					override[v] = ceiling
				}
				view = view.WithOverride(override)
			}
			r, err := templatebuilder.BuildDepth(cur, view, maxDepth)
			if err != nil {
				return err
			}
			out[i] = objectiveOutcome{Win0: r.Win0, Win1: r.Win1, Template: r.Template}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
