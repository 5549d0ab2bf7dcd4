package pgsolver

import "errors"

// ErrMissingHeader is returned when no "parity N;" header line is found
// before end of input.
var ErrMissingHeader = errors.New("pgsolver: missing \"parity N;\" header")

// ErrMalformedRecord is returned when a vertex record cannot be parsed
// into id, colors, owner, and successor fields.
var ErrMalformedRecord = errors.New("pgsolver: malformed vertex record")

// ErrColorCountMismatch is returned when a vertex record's color count
// does not match the number of objectives established by the first
// record parsed.
var ErrColorCountMismatch = errors.New("pgsolver: color count mismatch across vertex records")

// ErrUnknownOwner is returned when a record's owner field is not 0 or 1.
var ErrUnknownOwner = errors.New("pgsolver: owner must be 0 or 1")
