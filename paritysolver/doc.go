// Package paritysolver solves ordinary (single-objective) parity games
// by Zielonka's recursive algorithm: peel the attractor of the
// current-max-color player, recurse on the remainder, and — if the
// opponent wins any of that remainder — remove the opponent's attractor
// to its own winning region and recurse again (Game.hpp's
// recursive_zielonka_parity).
//
// Solve never mutates the arena.Arena it is given; every recursive step
// restricts to a fresh sub-arena via Arena.Restrict.
package paritysolver
