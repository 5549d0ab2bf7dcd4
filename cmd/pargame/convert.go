package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/pgsolver"
	"github.com/vparity/pargame/randcolor"
	"github.com/vparity/pargame/viz"
)

func cmdConvert(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	augmentCount := fs.Int("augment-count", 0, "number of additional random objectives to generate")
	augmentMaxColor := fs.Uint("augment-max-color", 0, "inclusive color ceiling for generated objectives")
	augmentSeed := fs.Int64("augment-seed", 0, "seed for random augmentation")
	configPath := fs.String("config", "", "load augmentation parameters from a YAML file; flags override file values")
	exportSVG := fs.String("export-svg", "", "render the resulting arena to this SVG path")
	if err := fs.Parse(args); err != nil {
		return -1
	}

	a, _, _, err := readArena(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return -1
	}

	count := *augmentCount
	maxColor := arena.Color(*augmentMaxColor)
	seed := *augmentSeed

	if *configPath != "" {
		cfg, err := LoadAugmentConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
		count = cfg.Count
		maxColor = arena.Color(cfg.MaxColor)
		seed = cfg.Seed

		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "augment-count":
				count = *augmentCount
			case "augment-max-color":
				maxColor = arena.Color(*augmentMaxColor)
			case "augment-seed":
				seed = *augmentSeed
			}
		})
	}

	if count > 0 {
		a, err = randcolor.Augment(a, count, maxColor, resolveSeed(seed))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
	}

	if err := pgsolver.Write(os.Stdout, a); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return -1
	}

	if *exportSVG != "" {
		if err := viz.SaveToFile(a, nil, nil, *exportSVG, viz.DefaultOptions()); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return -1
		}
	}

	return 0
}
