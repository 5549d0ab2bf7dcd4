// Package localview projects a finalized Template into a per-vertex local
// specification: for each player-0 vertex in the winning region, its
// outgoing edges partitioned into the action classes a strategy
// implementation chooses from (spec §4.6). It is a pure projection
// downstream of ParitySolver/TemplateBuilder or the Composer — it reads
// an Arena and a Template and never mutates either.
package localview
