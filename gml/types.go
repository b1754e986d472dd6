// Package gml implements a minimal reader and writer for the GML
// (Graph Modelling Language) layout files of spec §6: an optional node-
// coordinate overlay consumed only for rendering, and the network export
// that overlays G_L on that layout. Only node coordinates are read from a
// layout file; edge styling in it is ignored. GML is a plain-text brace
// format with no ecosystem-standard Go library in the retrieved corpus, so
// both directions are hand-written against io/fmt.
package gml

import "errors"

// ErrSyntax indicates malformed GML input.
var ErrSyntax = errors.New("gml: syntax error")

// NodePosition is one node's rendering coordinates, read from a layout
// graph's "graphics [ x ... y ... ]" block.
type NodePosition struct {
	X, Y float64
}

// Layout is an optional node-coordinate table over tree node names, used
// only for rendering (spec §6). It holds no edge styling.
type Layout struct {
	Positions map[string]NodePosition
}

// NetworkEdgeKind labels an emitted network edge as following the rooted
// tree (vertical) or as a lateral overlay edge from G_L (horizontal).
type NetworkEdgeKind string

const (
	Vertical   NetworkEdgeKind = "vertical"
	Horizontal NetworkEdgeKind = "horizontal"
)

// NetworkEdge is one edge of the exported GML network: a tree edge or a
// lateral edge, carrying the weight/cogs/colour fields spec §6 requires.
type NetworkEdge struct {
	Source, Target string
	Kind           NetworkEdgeKind
	Weight         int64
	Cogs           []string
	Color          string
}
