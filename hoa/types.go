package hoa

import (
	"errors"

	"github.com/vparity/pargame/arena"
)

// ErrMissingHeader is returned when the first non-blank token is not
// "HOA:".
var ErrMissingHeader = errors.New("hoa: missing \"HOA:\" header")

// ErrMissingField is returned when a required header field (States,
// Start, AP, acc-name, Acceptance, spot-state-player) is absent.
var ErrMissingField = errors.New("hoa: missing required header field")

// ErrMalformedTransition is returned when a body line cannot be parsed
// as "[label] succ {color...}".
var ErrMalformedTransition = errors.New("hoa: malformed transition")

// ErrAcceptanceArityMismatch is returned when transitions carry differing
// numbers of colors — spec.md §9 flags mixed arities as not clearly
// specified and rejects them as malformed input.
var ErrAcceptanceArityMismatch = errors.New("hoa: mixed acceptance-set arity across edges")

// Doc bundles the Arena a Parse call produced with the HOA-specific
// metadata that has no home in the core Arena type but must survive a
// round trip through Write (spec.md §6.2: "Emission... preserves
// state-player, controllable-AP, and multi-color annotations").
type Doc struct {
	Arena *arena.Arena

	// States is the original HOA body's declared state count (the state
	// vertex ids 0..States-1).
	States int

	// Start is the initial state id, stored as the arena's own initial
	// vertex (arena.WithInitialVertex) in addition to here for direct
	// access.
	Start arena.VertexID

	// APNames is the AP: header's atomic proposition name list, in
	// declared order.
	APNames []string

	// ControllableAP holds the indices named by controllable-AP:.
	ControllableAP []int

	// AcceptanceSets is K from "Acceptance: K <formula>".
	AcceptanceSets int

	// StateNames holds any optional quoted name following a State:
	// directive, keyed by state id.
	StateNames map[arena.VertexID]string
}
