// Package randcolor generates deterministic, seeded random color
// assignments over an existing Arena's vertex set, used by the `convert`
// command to augment a parity game into a generalized one (spec.md line
// 194: "optionally augment with randomly generated objectives given a
// count and a color ceiling").
//
// Grounded on MultiGame.hpp's randMultigame/random_colors: each color in
// [0, maxColor] first claims a minimum quota of vertices, then every
// remaining vertex gets a uniformly random color. The RNG plumbing itself
// (explicit seed, a zero seed meaning "use a fixed default", deriving
// independent sub-streams) follows the teacher's own tsp/rng.go.
package randcolor
