package gml

import (
	"fmt"
	"io"
	"strings"
)

// WriteNetwork renders the tree's layout overlaid with edges (tree edges
// labelled "vertical", lateral edges from G_L labelled "horizontal") as a
// GML document (spec §6), using w.Write directly rather than buffering the
// whole document in memory.
func WriteNetwork(w io.Writer, layout *Layout, edges []NetworkEdge) error {
	bw := newIndentWriter(w)

	bw.line("graph [")
	bw.indent++
	bw.line("directed 0")

	nodeID := make(map[string]int)
	for name := range layout.Positions {
		nodeID[name] = len(nodeID)
	}
	for _, e := range edges {
		if _, ok := nodeID[e.Source]; !ok {
			nodeID[e.Source] = len(nodeID)
		}
		if _, ok := nodeID[e.Target]; !ok {
			nodeID[e.Target] = len(nodeID)
		}
	}

	names := make([]string, len(nodeID))
	for name, id := range nodeID {
		names[id] = name
	}
	for id, name := range names {
		bw.line("node [")
		bw.indent++
		bw.line(fmt.Sprintf("id %d", id))
		bw.line(fmt.Sprintf("label %q", name))
		if pos, ok := layout.Positions[name]; ok {
			bw.line("graphics [")
			bw.indent++
			bw.line(fmt.Sprintf("x %g", pos.X))
			bw.line(fmt.Sprintf("y %g", pos.Y))
			bw.indent--
			bw.line("]")
		}
		bw.indent--
		bw.line("]")
	}

	for _, e := range edges {
		bw.line("edge [")
		bw.indent++
		bw.line(fmt.Sprintf("source %d", nodeID[e.Source]))
		bw.line(fmt.Sprintf("target %d", nodeID[e.Target]))
		bw.line(fmt.Sprintf("label %q", string(e.Kind)))
		bw.line(fmt.Sprintf("weight %d", e.Weight))
		bw.line(fmt.Sprintf("cogs %q", strings.Join(e.Cogs, ",")))
		if e.Color != "" {
			bw.line("graphics [")
			bw.indent++
			bw.line(fmt.Sprintf("fill %q", e.Color))
			bw.indent--
			bw.line("]")
		}
		bw.indent--
		bw.line("]")
	}

	bw.indent--
	bw.line("]")

	return bw.err
}

// indentWriter writes one GML line at a time at the current indent level,
// latching the first write error so callers can check it once at the end.
type indentWriter struct {
	w      io.Writer
	indent int
	err    error
}

func newIndentWriter(w io.Writer) *indentWriter { return &indentWriter{w: w} }

func (iw *indentWriter) line(s string) {
	if iw.err != nil {
		return
	}
	_, iw.err = fmt.Fprintf(iw.w, "%s%s\n", strings.Repeat("  ", iw.indent), s)
}
