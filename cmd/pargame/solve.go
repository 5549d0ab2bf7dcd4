package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vparity/pargame/composer"
	"github.com/vparity/pargame/internal/gameio"
	"github.com/vparity/pargame/localview"
	"github.com/vparity/pargame/puf"
	"github.com/vparity/pargame/viz"
)

// printGameFlag implements flag.Value and flag.boolFlag so that bare
// -print-game (no "=value") is accepted, matching spec.md's
// "-print-game[=pg]" optional-argument syntax: the flag package treats
// any Value advertising IsBoolFlag() as settable without "=value", and
// calls Set("true") in that case.
type printGameFlag struct {
	set   bool
	value string
}

func (p *printGameFlag) String() string { return p.value }

func (p *printGameFlag) Set(s string) error {
	p.set = true
	if s == "true" {
		p.value = ""
	} else {
		p.value = s
	}
	return nil
}

func (p *printGameFlag) IsBoolFlag() bool { return true }

func cmdSolve(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	printTemplateSize := fs.Bool("print-template-size", false, "emit cardinalities of U, C, and flattened live groups")
	printActions := fs.Bool("print-actions", false, "replace edge-node identifiers with their label expression")
	localize := fs.Bool("localize", false, "emit per-vertex local templates as JSON records")
	exportSVG := fs.String("export-svg", "", "render the arena and template to this SVG path")
	pufPercentage := fs.Float64("puf-percentage", 0, "mark this percentage of edges permanently unavailable and check implementability")
	pufSeed := fs.Int64("puf-seed", 0, "seed for -puf-percentage's edge sampling")
	var printGame printGameFlag
	fs.Var(&printGame, "print-game", "echo the parsed game back; an explicit value (e.g. pg) forces the output format")
	if err := fs.Parse(args); err != nil {
		return -1
	}

	a, doc, format, err := readArena(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return -1
	}

	if printGame.set {
		outFormat := format
		if printGame.value != "" {
			outFormat = gameFormat(printGame.value)
		}
		if err := writeArena(os.Stdout, a, doc, outFormat); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
	}

	result, err := composer.Solve(context.Background(), a)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return -1
	}

	printWinningRegion(os.Stdout, result.Win0, result.Win1)
	printTemplate(os.Stdout, a, result.Template, *printActions)

	if *printTemplateSize {
		if err := gameio.WriteTemplateSize(os.Stdout, result.Template); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
	}

	if *localize {
		views, err := localview.Build(a, result.Win0, result.Template)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
		if err := gameio.WriteLocalViews(os.Stdout, views); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
	}

	if *pufPercentage > 0 {
		unavailable, err := puf.GenerateEdges(a, *pufPercentage, resolveSeed(*pufSeed))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
		ok, conflicts := puf.CheckImplementable(a, result.Win0, result.Win1, result.Template, unavailable)
		if ok {
			fmt.Println("puf: template remains implementable under the sampled unavailable edges")
			puf.ConditionOnUnavailability(result.Template, unavailable)
			if result.Template.SizeCondLive() > 0 {
				fmt.Println("puf: recorded conditional live-group obligations:")
				printTemplate(os.Stdout, a, result.Template, *printActions)
			}
		} else {
			fmt.Printf("puf: template conflicts at vertices %v\n", conflicts)
		}
	}

	if *exportSVG != "" {
		if err := viz.SaveToFile(a, result.Win0, result.Template, *exportSVG, viz.DefaultOptions()); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
	}

	initial, ok := a.Initial()
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: pargame: arena declares no initial vertex")
		return -1
	}
	if result.Win0.Has(initial) {
		return 0
	}
	fmt.Fprintln(os.Stderr, "unrealizable: initial vertex is winning for player 1")
	return 1
}
