// Package hoa parses and emits the extended parity-game subset of the
// Hanoi Omega-Automata format (spec.md §6.2): a header of HOA/States/
// Start/AP/acc-name/Acceptance/spot-state-player/controllable-AP fields,
// and a body of per-state transitions "[label] succ {color...}".
//
// Each transition is materialized as an auxiliary edge-node vertex
// (owner arena.EdgeNode) carrying the label and the color(s), rewriting
// labeled-transition parity into the pure vertex-coloring model the
// rest of this module operates on. The hoa_consumer_build_parity_game.hh
// reference this is grounded on intentionally contains no body — this
// package follows spec.md §6.2's field list directly, using the same
// bufio.Scanner line-at-a-time idiom as package pgsolver.
package hoa
