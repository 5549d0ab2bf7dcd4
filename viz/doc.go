// Package viz renders an Arena and its strategy Template to SVG: a
// circular vertex layout colored by winning region and owner, with edges
// styled by their template classification (unsafe / co-live / live /
// unrestricted).
//
// Grounded on dshills-dungo/pkg/export/svg.go's ExportSVG: a
// github.com/ajstarks/svgo canvas, a sorted-id circular layout
// (calculateLayout), and deterministic draw order (edges, then nodes,
// then labels) so repeated renders of the same input are byte-identical.
package viz
