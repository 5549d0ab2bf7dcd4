// Package attractor computes the coalition-forced-reachability attractor
// of a target vertex set: the set of vertices from which a given player
// can force play into the target, regardless of the opponent's choices.
//
// Attr is the single primitive both paritysolver and templatebuilder
// build on: Zielonka's algorithm peels winning regions via attractors to
// the top-color vertices. Live-group reachability in templatebuilder grows
// the same player-0 attractor one layer at a time, so that it can record
// each layer's live edges.
package attractor
