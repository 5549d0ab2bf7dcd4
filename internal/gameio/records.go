package gameio

import (
	"io"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/vparity/pargame/arena"
	"github.com/vparity/pargame/localview"
	"github.com/vparity/pargame/template"
)

// LocalViewRecord is one player-0 vertex's local specification, the
// --localize record shape.
type LocalViewRecord struct {
	Vertex       arena.VertexID   `json:"vertex"`
	All          []arena.VertexID `json:"all"`
	Unsafe       []arena.VertexID `json:"unsafe"`
	CoLive       []arena.VertexID `json:"co_live"`
	Live         []arena.VertexID `json:"live"`
	Unrestricted []arena.VertexID `json:"unrestricted"`
	Preferred    []arena.VertexID `json:"preferred"`
}

// WriteLocalViews emits one LocalViewRecord per entry of views, in
// ascending vertex-id order, as a single JSON array.
func WriteLocalViews(w io.Writer, views map[arena.VertexID]*localview.View) error {
	verts := make([]arena.VertexID, 0, len(views))
	for v := range views {
		verts = append(verts, v)
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })

	records := make([]LocalViewRecord, 0, len(verts))
	for _, v := range verts {
		view := views[v]
		records = append(records, LocalViewRecord{
			Vertex:       v,
			All:          view.All.Slice(),
			Unsafe:       view.Unsafe.Slice(),
			CoLive:       view.CoLive.Slice(),
			Live:         view.Live.Slice(),
			Unrestricted: view.Unrestricted.Slice(),
			Preferred:    view.Preferred.Slice(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// TemplateSizeRecord is the --print-template-size record shape: the
// cardinality of each template component, not its contents.
type TemplateSizeRecord struct {
	Unsafe   int   `json:"unsafe"`
	CoLive   int   `json:"co_live"`
	Live     []int `json:"live"`
	CondLive []int `json:"cond_live,omitempty"`
}

// WriteTemplateSize emits tpl's component sizes as a single JSON object.
func WriteTemplateSize(w io.Writer, tpl *template.Template) error {
	rec := TemplateSizeRecord{
		Unsafe: tpl.SizeUnsafe(),
		CoLive: tpl.SizeColive(),
		Live:   make([]int, len(tpl.Live)),
	}
	for i, g := range tpl.Live {
		rec.Live[i] = g.Size()
	}
	if len(tpl.CondLive) > 0 {
		rec.CondLive = make([]int, len(tpl.CondLive))
		for i, g := range tpl.CondLive {
			rec.CondLive[i] = g.Size()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
