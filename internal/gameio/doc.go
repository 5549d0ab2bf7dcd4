// Package gameio renders the machine-readable record output the CLI's
// --localize and --print-template-size flags promise (spec.md line 199):
// JSON, one object per record, via github.com/goccy/go-json — the
// drop-in encoding/json replacement already present in the example
// pack's own go.mod (vanderheijden86-beadwork, vanderheijden86-b9s) —
// rather than ad hoc text formatting.
package gameio
