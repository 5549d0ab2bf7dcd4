package localview

import (
	"fmt"
	"strings"

	"github.com/vparity/pargame/arena"
)

// String renders v for diagnostics, mirroring Template.String's
// deterministic-order convention.
func (v *View) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "all: %s\n", renderSet(v.All))
	fmt.Fprintf(&sb, "unsafe: %s\n", renderSet(v.Unsafe))
	fmt.Fprintf(&sb, "colive: %s\n", renderSet(v.CoLive))
	fmt.Fprintf(&sb, "live: %s\n", renderSet(v.Live))
	fmt.Fprintf(&sb, "unrestricted: %s\n", renderSet(v.Unrestricted))
	fmt.Fprintf(&sb, "preferred: %s", renderSet(v.Preferred))
	return sb.String()
}

func renderSet(s interface{ Slice() []arena.VertexID }) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, u := range s.Slice() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", u)
	}
	sb.WriteString("}")
	return sb.String()
}
