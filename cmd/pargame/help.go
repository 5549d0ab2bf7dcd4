package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: pargame <solve|convert> [options] [< input]")
	fmt.Fprintln(os.Stderr, "\nRun 'pargame -help' for detailed help")
}

func printHelp() {
	fmt.Printf("pargame version %s\n\n", version)
	fmt.Println("Computes permissive winning strategy templates for parity and")
	fmt.Println("generalized parity games, reading PGSolver or HOA text from stdin.")
	fmt.Println("\nUsage:")
	fmt.Println("  pargame solve [options] < game.pg")
	fmt.Println("  pargame convert [options] < game.pg > game.gpg")
	fmt.Println("\nCommands:")
	fmt.Println("  solve")
	fmt.Println("        Solve a game read from stdin; print the winning region and")
	fmt.Println("        strategy template to stdout. Exit code: 0 if the initial")
	fmt.Println("        vertex is winning for player 0, 1 if losing, negative on")
	fmt.Println("        malformed input.")
	fmt.Println("  convert")
	fmt.Println("        Treat a parity game as a generalized parity game with one")
	fmt.Println("        objective, optionally augmenting it with randomly generated")
	fmt.Println("        objectives. Writes PGSolver text to stdout.")
	fmt.Println("\nShared flags:")
	fmt.Println("  -export-svg string")
	fmt.Println("        Render the arena (and, for solve, its template) to this SVG path")
	fmt.Println("\nsolve flags:")
	fmt.Println("  -print-template-size")
	fmt.Println("        Emit cardinalities of the unsafe, co-live, and live components")
	fmt.Println("  -print-actions")
	fmt.Println("        Replace edge-node successors with their label expression")
	fmt.Println("  -localize")
	fmt.Println("        Emit per-vertex local templates as JSON records")
	fmt.Println("  -print-game[=pg]")
	fmt.Println("        Echo the parsed game back before solving it")
	fmt.Println("  -puf-percentage float")
	fmt.Println("        Mark this percentage of edges permanently unavailable and")
	fmt.Println("        report whether the computed template remains implementable")
	fmt.Println("  -puf-seed int")
	fmt.Println("        Seed for -puf-percentage's edge sampling (default 0 = time-based seed, printed to stderr)")
	fmt.Println("\nconvert flags:")
	fmt.Println("  -augment-count int")
	fmt.Println("        Number of additional random objectives to generate")
	fmt.Println("  -augment-max-color uint")
	fmt.Println("        Inclusive color ceiling for generated objectives")
	fmt.Println("  -augment-seed int")
	fmt.Println("        Seed for random augmentation (default 0 = time-based seed, printed to stderr)")
	fmt.Println("  -config string")
	fmt.Println("        Load augmentation parameters from a YAML file; explicit flags")
	fmt.Println("        above override the file's values")
	fmt.Println("\nExamples:")
	fmt.Println("  pargame solve -print-template-size < game.pg")
	fmt.Println("  pargame convert -augment-count 2 -augment-max-color 3 < game.pg > game.gpg")
	fmt.Println("  pargame solve -export-svg out.svg < game.hoa")
}
