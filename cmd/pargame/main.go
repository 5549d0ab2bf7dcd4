// Command pargame solves parity and generalized parity games and converts
// between their textual encodings. See -help for usage.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(-1)
	}

	switch os.Args[1] {
	case "-help", "--help", "help":
		printHelp()
		os.Exit(0)
	case "solve":
		os.Exit(cmdSolve(os.Args[2:]))
	case "convert":
		os.Exit(cmdConvert(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "pargame: unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(-1)
	}
}
