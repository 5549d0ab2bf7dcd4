// Package setops implements the finite vertex-set and edge-map algebra
// shared by the attractor, paritysolver, templatebuilder, and composer
// packages: union, intersection, difference, complement within an arena,
// subset and non-empty-intersection tests, and the map-filtering
// operations used to peel vertices and edges out of working state during
// a fixed-point computation.
//
// The set operations here are pure value-in/value-out operations that do
// not mutate their argument maps; callers own copy-on-write. Two
// exceptions: VertexWithColor reads colors from an *arena.Arena, and
// EdgeMap.Add inserts into its receiver in place.
package setops
