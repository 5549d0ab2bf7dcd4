package hoa

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/vparity/pargame/arena"
)

var (
	stateLineRe      = regexp.MustCompile(`^State:\s*(\d+)(?:\s+"([^"]*)")?\s*$`)
	transitionLineRe = regexp.MustCompile(`^\[(.*?)\]\s+(\d+)\s*(?:\{([^}]*)\})?\s*;?\s*$`)
)

type rawTransition struct {
	from, to arena.VertexID
	label    string
	colors   []int
}

// Parse reads the HOA subset described in spec.md §6.2 from r.
func Parse(r io.Reader) (*Doc, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	var first []string
	for scanner.Scan() {
		first = strings.Fields(scanner.Text())
		if len(first) > 0 {
			break
		}
	}
	if len(first) == 0 || first[0] != "HOA:" {
		return nil, ErrMissingHeader
	}

	doc := &Doc{StateNames: make(map[arena.VertexID]string)}
	haveStates, haveStart, haveAP, haveAccName, haveAcceptance, haveStatePlayer := false, false, false, false, false, false
	var statePlayers []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "--BODY--" {
			break
		}
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "States:":
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("hoa: States: %w", ErrMalformedTransition)
			}
			doc.States = n
			haveStates = true
		case "Start:":
			n, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("hoa: Start: %w", ErrMalformedTransition)
			}
			doc.Start = arena.VertexID(n)
			haveStart = true
		case "AP:":
			doc.APNames = extractQuoted(line)
			haveAP = true
		case "acc-name:":
			haveAccName = true
		case "Acceptance:":
			k, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("hoa: Acceptance: %w", ErrMalformedTransition)
			}
			doc.AcceptanceSets = k
			haveAcceptance = true
		case "spot-state-player:":
			for _, f := range fields[1:] {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("hoa: spot-state-player: %w", ErrMalformedTransition)
				}
				statePlayers = append(statePlayers, v)
			}
			haveStatePlayer = true
		case "controllable-AP:":
			for _, f := range fields[1:] {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("hoa: controllable-AP: %w", ErrMalformedTransition)
				}
				doc.ControllableAP = append(doc.ControllableAP, v)
			}
		}
	}
	if !(haveStates && haveStart && haveAP && haveAccName && haveAcceptance && haveStatePlayer) {
		return nil, ErrMissingField
	}

	var transitions []rawTransition
	currentState := arena.VertexID(0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "--END--" {
			continue
		}
		if m := stateLineRe.FindStringSubmatch(line); m != nil {
			id, _ := strconv.ParseUint(m[1], 10, 64)
			currentState = arena.VertexID(id)
			if m[2] != "" {
				doc.StateNames[currentState] = m[2]
			}
			continue
		}
		m := transitionLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("hoa: %q: %w", line, ErrMalformedTransition)
		}
		succ, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("hoa: %q: %w", line, ErrMalformedTransition)
		}
		colors, err := parseColorList(m[3])
		if err != nil {
			return nil, fmt.Errorf("hoa: %q: %w", line, ErrMalformedTransition)
		}
		transitions = append(transitions, rawTransition{
			from:   currentState,
			to:     arena.VertexID(succ),
			label:  m[1],
			colors: colors,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hoa: reading input: %w", err)
	}

	numObjectives := 1
	if len(transitions) > 0 {
		numObjectives = len(transitions[0].colors)
		if numObjectives == 0 {
			numObjectives = 1
		}
	}
	for _, tr := range transitions {
		if len(tr.colors) != 0 && len(tr.colors) != numObjectives {
			return nil, fmt.Errorf("hoa: transition %q: %w", tr.label, ErrAcceptanceArityMismatch)
		}
	}

	opts := []arena.Option{arena.WithInitialVertex(doc.Start)}
	a := arena.NewArena(numObjectives, opts...)

	zeroColors := make([]arena.Color, numObjectives)
	for id := 0; id < doc.States; id++ {
		// spot-state-player's value is the complement of owner:
		// owner = 1 - value.
		owner := arena.Player1
		if id < len(statePlayers) && statePlayers[id] == 1 {
			owner = arena.Player0
		}
		if err := a.AddVertex(arena.VertexID(id), owner, zeroColors...); err != nil {
			return nil, fmt.Errorf("hoa: state %d: %w", id, err)
		}
	}

	nextID := arena.VertexID(doc.States)
	for _, tr := range transitions {
		colors := make([]arena.Color, numObjectives)
		for i, c := range tr.colors {
			colors[i] = arena.Color(c)
		}
		edgeNode := nextID
		nextID++
		if err := a.AddVertex(edgeNode, arena.EdgeNode, colors...); err != nil {
			return nil, fmt.Errorf("hoa: transition %q: %w", tr.label, err)
		}
		if err := a.SetLabel(edgeNode, tr.label); err != nil {
			return nil, fmt.Errorf("hoa: transition %q: %w", tr.label, err)
		}
		if err := a.AddEdge(tr.from, edgeNode); err != nil {
			return nil, fmt.Errorf("hoa: transition %q: %w", tr.label, err)
		}
		if err := a.AddEdge(edgeNode, tr.to); err != nil {
			return nil, fmt.Errorf("hoa: transition %q: %w", tr.label, err)
		}
	}

	doc.Arena = a
	return doc, nil
}

func extractQuoted(line string) []string {
	re := regexp.MustCompile(`"([^"]*)"`)
	matches := re.FindAllStringSubmatch(line, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func parseColorList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
