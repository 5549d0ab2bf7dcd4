// Package puf implements permanent-unavailability-fault (PUF) stress
// testing of an already-computed strategy template: a random subset of
// edges is marked permanently unavailable, and CheckImplementable
// answers whether the template remains implementable once player 0 can
// never take them.
//
// This is the [SUPPLEMENT] named in SPEC_FULL.md §9: the original's
// tool/src/solvePUF.cpp and tool/src/conflictsPUF.cpp declare PUF but the
// distilled spec places the edge generator itself out of core scope.
// GenerateEdges keeps that generator (MultiGame.hpp's generate_PUF_edges)
// as an external helper; CheckImplementable is the actual checker
// (MultiGame.hpp's need_recomputation_PUF_parity / compute_dead_ends /
// conflicts_recomputation_PUF_parity), implemented as a pure function
// over an existing arena and template rather than a new core solver.
package puf
