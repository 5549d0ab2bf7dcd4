package viz

import (
	"bytes"
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/setops"
	"github.com/vparity/pargame/template"
)

// Options configures an SVG render.
type Options struct {
	Width, Height int
	NodeRadius    int
	Margin        int
	Title         string
	ShowLabels    bool
	ShowLegend    bool
}

// DefaultOptions returns sensible defaults, mirroring
// dshills-dungo/pkg/export.DefaultSVGOptions.
func DefaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     800,
		NodeRadius: 18,
		Margin:     60,
		Title:      "",
		ShowLabels: true,
		ShowLegend: true,
	}
}

type position struct {
	X, Y float64
}

// Render draws a (and, if tpl is non-nil, its template classification) to
// SVG. win0 colors the winning region for player 0; vertices outside it
// are drawn as losing. A nil tpl renders only the arena's structure.
func Render(a *arena.Arena, win0 setops.VertexSet, tpl *template.Template, opts Options) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("viz: Render: arena is nil")
	}
	opts = fillDefaults(opts)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	verts := a.Vertices()
	positions := layout(verts, opts)

	drawEdges(canvas, a, positions, tpl)
	drawNodes(canvas, a, win0, positions, opts)
	if opts.ShowLabels {
		drawLabels(canvas, verts, positions)
	}
	if opts.ShowLegend {
		drawLegend(canvas, opts)
	}
	if opts.Title != "" {
		canvas.Text(opts.Width/2, 25, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders and writes the result to path with 0644 permissions.
func SaveToFile(a *arena.Arena, win0 setops.VertexSet, tpl *template.Template, path string, opts Options) error {
	data, err := Render(a, win0, tpl, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func fillDefaults(opts Options) Options {
	d := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = d.Width
	}
	if opts.Height <= 0 {
		opts.Height = d.Height
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = d.NodeRadius
	}
	if opts.Margin <= 0 {
		opts.Margin = d.Margin
	}
	return opts
}

// layout places verts (already sorted ascending by Arena.Vertices) evenly
// around a circle, the same scheme as dshills-dungo's calculateLayout.
func layout(verts []arena.VertexID, opts Options) map[arena.VertexID]position {
	positions := make(map[arena.VertexID]position, len(verts))
	if len(verts) == 0 {
		return positions
	}
	drawWidth := float64(opts.Width - 2*opts.Margin - 2*opts.NodeRadius)
	drawHeight := float64(opts.Height - 2*opts.Margin - 2*opts.NodeRadius)
	centerX := float64(opts.Width) / 2
	centerY := float64(opts.Height) / 2
	radius := math.Min(drawWidth, drawHeight) / 2.2

	if len(verts) == 1 {
		positions[verts[0]] = position{X: centerX, Y: centerY}
		return positions
	}

	angleStep := 2 * math.Pi / float64(len(verts))
	for i, v := range verts {
		angle := float64(i) * angleStep
		positions[v] = position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}
	return positions
}

// edgeStyle classifies (from,to) against tpl, following the same
// unsafe/co-live/live/unrestricted precedence as package localview.
func edgeStyle(from, to arena.VertexID, tpl *template.Template) (color, dash string) {
	if tpl == nil {
		return "#4a5568", ""
	}
	if tpl.Unsafe.Has(from, to) {
		return "#f56565", "stroke-dasharray:2,2"
	}
	if tpl.CoLive.Has(from, to) {
		return "#718096", "stroke-dasharray:5,5;opacity:0.6"
	}
	for _, g := range tpl.Live {
		if g.Has(from, to) {
			return "#48bb78", ""
		}
	}
	return "#4299e1", "opacity:0.5"
}

func drawEdges(canvas *svg.SVG, a *arena.Arena, positions map[arena.VertexID]position, tpl *template.Template) {
	for _, v := range a.Vertices() {
		succ, err := a.Successors(v)
		if err != nil {
			continue
		}
		from := positions[v]
		for _, u := range succ {
			to, ok := positions[u]
			if !ok {
				continue
			}
			color, dash := edgeStyle(v, u, tpl)
			style := fmt.Sprintf("stroke:%s;stroke-width:2;%s", color, dash)
			canvas.Line(int(from.X), int(from.Y), int(to.X), int(to.Y), style)
		}
	}
}

func ownerColor(owner arena.Owner) string {
	switch owner {
	case arena.Player0:
		return "#4299e1"
	case arena.Player1:
		return "#ed8936"
	default: // arena.EdgeNode
		return "#a0aec0"
	}
}

func drawNodes(canvas *svg.SVG, a *arena.Arena, win0 setops.VertexSet, positions map[arena.VertexID]position, opts Options) {
	for _, v := range a.Vertices() {
		pos, ok := positions[v]
		if !ok {
			continue
		}
		owner, err := a.Owner(v)
		if err != nil {
			continue
		}
		radius := opts.NodeRadius
		if owner == arena.EdgeNode {
			radius = opts.NodeRadius / 2
		}

		stroke := "#e2e8f0"
		if win0 != nil && !win0.Has(v) {
			stroke = "#f56565"
		}
		canvas.Circle(int(pos.X), int(pos.Y), radius,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2;opacity:0.9", ownerColor(owner), stroke))
	}
}

func drawLabels(canvas *svg.SVG, verts []arena.VertexID, positions map[arena.VertexID]position) {
	for _, v := range verts {
		pos, ok := positions[v]
		if !ok {
			continue
		}
		canvas.Text(int(pos.X), int(pos.Y)+4, fmt.Sprintf("%d", v),
			"text-anchor:middle;font-size:11px;font-family:monospace;fill:#1a1a2e;font-weight:bold")
	}
}

func drawLegend(canvas *svg.SVG, opts Options) {
	x := opts.Margin
	y := opts.Height - opts.Margin - 110

	canvas.Rect(x-10, y-15, 190, 120, "fill:#2d3748;stroke:#4a5568;stroke-width:1;opacity:0.95;rx:5")
	canvas.Text(x, y, "Edges", "font-size:13px;font-weight:bold;fill:#e2e8f0")

	entries := []struct {
		label, color, dash string
	}{
		{"unsafe", "#f56565", "stroke-dasharray:2,2"},
		{"co-live", "#718096", "stroke-dasharray:5,5"},
		{"live", "#48bb78", ""},
		{"unrestricted", "#4299e1", ""},
	}
	y += 20
	for _, e := range entries {
		canvas.Line(x, y, x+30, y, fmt.Sprintf("stroke:%s;stroke-width:2;%s", e.color, e.dash))
		canvas.Text(x+38, y+4, e.label, "font-size:11px;fill:#cbd5e0")
		y += 20
	}
}
