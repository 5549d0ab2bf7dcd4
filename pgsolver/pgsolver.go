package pgsolver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vparity/pargame/arena"
)

const maxLineCapacity = 1 << 20 // 1MB, generous for dense generalized-parity records

// record is one parsed vertex line, before the arena knows its own
// NumObjectives (record.go's addSequentialVertices-style two-pass
// construction in lvlath's builder package: validate then build).
type record struct {
	id      arena.VertexID
	colors  []arena.Color
	owner   arena.Owner
	succ    []arena.VertexID
	lineNum int
}

// Parse reads the PGSolver (or generalized PGSolver) text format from r
// and returns the Arena it describes. The number of objectives is
// inferred from the first vertex record's color count; every subsequent
// record must match it.
func Parse(r io.Reader) (*arena.Arena, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineCapacity)

	if err := skipToHeader(scanner); err != nil {
		return nil, err
	}

	var records []record
	numObjectives := 0
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := parseRecord(line, lineNum)
		if err != nil {
			return nil, err
		}
		if numObjectives == 0 {
			numObjectives = len(rec.colors)
		} else if len(rec.colors) != numObjectives {
			return nil, fmt.Errorf("pgsolver: line %d: %w (want %d, got %d)", lineNum, ErrColorCountMismatch, numObjectives, len(rec.colors))
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pgsolver: reading input: %w", err)
	}
	if numObjectives == 0 {
		numObjectives = 1
	}

	a := arena.NewArena(numObjectives)
	for _, rec := range records {
		if err := a.AddVertex(rec.id, rec.owner, rec.colors...); err != nil {
			return nil, fmt.Errorf("pgsolver: line %d: %w", rec.lineNum, err)
		}
	}
	for _, rec := range records {
		for _, to := range rec.succ {
			if err := a.AddEdge(rec.id, to); err != nil {
				return nil, fmt.Errorf("pgsolver: line %d: %w", rec.lineNum, err)
			}
		}
	}
	return a, nil
}

// skipToHeader advances scanner past every line until one whose first
// field is "parity" (FileHandler.hpp's pg2game header-skip loop).
func skipToHeader(scanner *bufio.Scanner) error {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == "parity" {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("pgsolver: reading input: %w", err)
	}
	return ErrMissingHeader
}

// parseRecord parses one "id colors owner succs;" line. A trailing
// quoted name, if present, is discarded (spec.md names only the core
// fields; PGSolver names are a debugging aid this module does not
// round-trip).
func parseRecord(line string, lineNum int) (record, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return record{}, fmt.Errorf("pgsolver: line %d: %w", lineNum, ErrMalformedRecord)
	}

	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return record{}, fmt.Errorf("pgsolver: line %d: vertex id: %w", lineNum, ErrMalformedRecord)
	}

	colors, err := parseUintList(fields[1])
	if err != nil {
		return record{}, fmt.Errorf("pgsolver: line %d: colors: %w", lineNum, ErrMalformedRecord)
	}
	colorVals := make([]arena.Color, len(colors))
	for i, c := range colors {
		colorVals[i] = arena.Color(c)
	}

	ownerVal, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil || ownerVal > 1 {
		return record{}, fmt.Errorf("pgsolver: line %d: %w", lineNum, ErrUnknownOwner)
	}

	succVals, err := parseUintList(fields[3])
	if err != nil {
		return record{}, fmt.Errorf("pgsolver: line %d: successors: %w", lineNum, ErrMalformedRecord)
	}
	succ := make([]arena.VertexID, len(succVals))
	for i, s := range succVals {
		succ[i] = arena.VertexID(s)
	}

	return record{
		id:      arena.VertexID(id),
		colors:  colorVals,
		owner:   arena.Owner(ownerVal),
		succ:    succ,
		lineNum: lineNum,
	}, nil
}

func parseUintList(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Write emits a in PGSolver (or generalized PGSolver) text format,
// vertices in ascending id order for deterministic output
// (multigame2gpg's per-vertex line format).
func Write(w io.Writer, a *arena.Arena) error {
	verts := a.Vertices()
	maxID := arena.VertexID(0)
	for _, v := range verts {
		if v > maxID {
			maxID = v
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "parity %d;\n", maxID); err != nil {
		return fmt.Errorf("pgsolver: writing header: %w", err)
	}

	n := a.NumObjectives()
	for _, v := range verts {
		owner, err := a.Owner(v)
		if err != nil {
			return fmt.Errorf("pgsolver: %w", err)
		}
		colorStrs := make([]string, n)
		for i := 0; i < n; i++ {
			c, err := a.Color(i, v)
			if err != nil {
				return fmt.Errorf("pgsolver: %w", err)
			}
			colorStrs[i] = strconv.FormatUint(uint64(c), 10)
		}
		succ, err := a.Successors(v)
		if err != nil {
			return fmt.Errorf("pgsolver: %w", err)
		}
		succStrs := make([]string, len(succ))
		for i, u := range succ {
			succStrs[i] = strconv.FormatUint(uint64(u), 10)
		}
		if _, err := fmt.Fprintf(bw, "%d %s %d %s;\n", v, strings.Join(colorStrs, ","), owner, strings.Join(succStrs, ",")); err != nil {
			return fmt.Errorf("pgsolver: writing vertex %d: %w", v, err)
		}
	}
	return bw.Flush()
}
