// Package mst provides a deterministic Kruskal implementation of Minimum
// Spanning Tree over an undirected, weighted *core.Graph.
package mst

import (
	"sort"

	"github.com/arborlex/gainloss/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted
// graph using a disjoint-set (union-find) structure with path compression and
// union by rank.
//
// Determinism: when several edges tie on Weight, the one with the
// lexicographically smaller (From, To) pair is preferred. The network
// builder's per-character weight graphs are the sole caller of this
// function and rely on this exact tie-break to make the lateral graph
// reproducible across runs and across networkx-style implementations that
// only tie-break by insertion order.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil, directed, unweighted, or carries
//     per-edge directed overrides.
//   - ErrDisconnected: |V| == 0, or |V| > 1 and the graph is not fully
//     connected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (Result, error) {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return Result{}, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return Result{}, ErrDisconnected
	}
	if len(vertices) == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	allEdges := graph.Edges() // []*core.Edge, sorted by Edge.ID
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue // self-loops cannot be part of a spanning tree
		}
		edges = append(edges, e)
	}

	// Sort by ascending weight, then lexicographic (From, To) to force a
	// single canonical MST whenever several are tied on total weight.
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		a, b := edges[i], edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
		rank[vid] = 0
	}

	var find func(string) string
	find = func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}
		return u
	}

	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	res := Result{Edges: make([]core.Edge, 0, len(vertices)-1)}
	numVerts := len(vertices)
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			res.Edges = append(res.Edges, *e)
			res.TotalWeight += e.Weight
			if len(res.Edges) == numVerts-1 {
				break
			}
		}
	}

	if len(res.Edges) < numVerts-1 {
		return Result{}, ErrDisconnected
	}
	return res, nil
}
