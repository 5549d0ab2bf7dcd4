// Package arena defines the game-graph data model shared by every solver in
// pargame: vertices, their owners, one or more parity-coloring functions,
// and the edge relation between them.
//
// An Arena is built once (typically by a parser in pgsolver or hoa) and then
// treated as read-only for the lifetime of a solver call: sub-arena
// restriction (Arena.Restrict) always returns a new value and never mutates
// its receiver, so a single Arena can be shared safely across the
// goroutines the Composer fans out over (see package composer).
//
// Vertices are identified by VertexID, a small unsigned integer. Every
// vertex has an Owner — Player0, Player1, or EdgeNode, the last being an
// auxiliary class used only to materialize HOA-style labeled transitions as
// vertices (see package hoa). A vertex may carry several Colors, one per
// parity objective; ColorView layers a scoped per-objective override atop
// an Arena's own color tables, the mechanism the Composer uses to recolor
// co-live vertices without mutating the persistent Arena (spec §9,
// "Mutable shared colors").
package arena
