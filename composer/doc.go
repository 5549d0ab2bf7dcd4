// Package composer solves generalized (conjunctive) parity games: n ≥ 2
// independent parity objectives over one shared arena, whose winning
// strategy templates must be merged into a single template consistent
// with every objective at once.
//
// The main loop (MultiGame.hpp's recursive_composition_template) solves
// each objective independently — in parallel, since the reads are
// independent — paints vertices the prior iteration flagged as co-live
// with a harmless high odd color before each re-solve, merges the
// resulting per-objective templates, and detects edges or live groups
// that no longer leave player 0 a genuine choice. Detected conflicts
// shrink the arena (the jointly-losing region is removed) and the loop
// repeats until no new conflicts appear.
package composer
