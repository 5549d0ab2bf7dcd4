// Package template implements the permissive winning-strategy template:
// the record of edges a winning strategy for player 0 may never use
// (unsafe), edges that may be used only finitely often (co-live), and
// groups of edges at least one of which must be used infinitely often
// (live groups), together with the conditional live groups used to
// express generalized-parity obligations (spec §3, §4.7; Template.hpp).
package template
