package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/hoa"
	"github.com/vparity/pargame/pgsolver"
)

// gameFormat names one of the two textual encodings solve/convert accept.
type gameFormat string

const (
	formatPG  gameFormat = "pg"
	formatHOA gameFormat = "hoa"
)

// detectFormat inspects the first non-blank token of data, per spec.md
// line 193: "HOA:" selects the HOA subset, "parity" selects PGSolver.
func detectFormat(data []byte) (gameFormat, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "HOA:"):
			return formatHOA, nil
		case strings.HasPrefix(line, "parity"):
			return formatPG, nil
		default:
			return "", fmt.Errorf("pargame: cannot detect input format from first line %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("pargame: reading input: %w", err)
	}
	return "", fmt.Errorf("pargame: empty input")
}

// readArena buffers r fully, detects its format, and parses it. doc is
// non-nil only when format is formatHOA, carrying the metadata (AP names,
// controllable-AP, state names) that a HOA --print-game echo needs and
// that has no home on arena.Arena itself.
func readArena(r io.Reader) (a *arena.Arena, doc *hoa.Doc, format gameFormat, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, "", fmt.Errorf("pargame: reading input: %w", err)
	}
	format, err = detectFormat(data)
	if err != nil {
		return nil, nil, "", err
	}
	switch format {
	case formatHOA:
		doc, err = hoa.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, nil, format, fmt.Errorf("pargame: parsing HOA input: %w", err)
		}
		a = doc.Arena
	case formatPG:
		a, err = pgsolver.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, nil, format, fmt.Errorf("pargame: parsing PGSolver input: %w", err)
		}
	}
	return a, doc, format, nil
}

// writeArena echoes a (and doc, if format is formatHOA) back out
// (--print-game). doc may be nil when format is formatPG.
func writeArena(w io.Writer, a *arena.Arena, doc *hoa.Doc, format gameFormat) error {
	switch format {
	case formatHOA:
		if doc == nil {
			return fmt.Errorf("pargame: --print-game=hoa requires HOA input (no parsed HOA metadata available)")
		}
		return hoa.Write(w, doc)
	case formatPG:
		return pgsolver.Write(w, a)
	default:
		return fmt.Errorf("pargame: unknown output format %q", format)
	}
}
