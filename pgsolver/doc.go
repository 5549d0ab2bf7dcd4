// Package pgsolver parses and emits the PGSolver text format for parity
// and generalized parity games (FileHandler.hpp's pg2game/gpg2game and
// multigame2gpg): a "parity N;" header followed by one line per vertex
// of "id color[,color...] owner succ[,succ...];" with an optional
// quoted name.
package pgsolver
