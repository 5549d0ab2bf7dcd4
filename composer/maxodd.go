package composer

import "github.com/vparity/pargame/arena"

// maxOddCeiling returns the smallest odd color ≥ c (spec §4.5 step 2,
// "max-odd-ceiling"). Painting a co-live vertex with this color for a
// given objective makes that objective's re-solve treat the vertex as
// the worst possible (odd, losing-flavored) color. When c is odd the
// result is c itself; when c is even it is c+1, one above the objective's
// own color range, so the painted vertex becomes the new (odd) top color.
func maxOddCeiling(c arena.Color) arena.Color {
	if c%2 == 1 {
		return c
	}
	return c + 1
}
