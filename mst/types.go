// Package mst computes deterministic minimum spanning trees over the
// per-character co-origin weight graphs built by package network (the W_c
// complete graph over a character's origin set O_c, §4.5 of the design).
//
// Unlike a general-purpose MST library, this package only needs Kruskal:
// W_c is always small (|O_c| nodes) and complete, so there is no asymptotic
// reason to prefer Prim's heap-driven growth, and Kruskal's global edge sort
// is what makes the lexicographic tie-break required by the network builder
// straightforward to state and verify. Prim's algorithm is dropped along
// with its root-selection machinery; see DESIGN.md.
package mst

import (
	"errors"

	"github.com/arborlex/gainloss/core"
)

// ErrInvalidGraph indicates that MST computation requires an undirected,
// weighted *core.Graph with no per-edge directed overrides.
var ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

// ErrDisconnected indicates the graph has more than one vertex and is not
// fully connected, so no spanning tree covers every vertex. The network
// builder never feeds mst.Kruskal a disconnected W_c (it is complete by
// construction), but the check stays so misuse fails loudly instead of
// silently returning a partial forest.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Result is the outcome of a Kruskal computation: the selected edges in the
// order they were added to the spanning tree, and their summed weight.
type Result struct {
	Edges       []core.Edge
	TotalWeight int64
}
