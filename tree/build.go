package tree

import (
	"fmt"
	"sort"

	"github.com/arborlex/gainloss/core"
)

// Builder accumulates parent→child edges by name and produces a Tree once
// every edge is declared, mirroring the incremental-then-finalize shape of
// the teacher's graph builders: names are free-form strings (taxon names
// for tips, clade labels for internal nodes) and are only resolved to the
// dense integer index space Tree uses internally at Build time.
type Builder struct {
	order []nameEdge
	seen  map[string]struct{}
}

type nameEdge struct{ parent, child string }

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// AddEdge records a parent→child relationship. Edges must be added in the
// order children should be visited under their parent (original left-to-
// right branch order); Build preserves this order in Children/NodesByTipCountAsc
// tie-breaks.
func (b *Builder) AddEdge(parent, child string) error {
	if parent == "" || child == "" {
		return ErrEmptyName
	}
	b.order = append(b.order, nameEdge{parent, child})
	b.seen[parent] = struct{}{}
	b.seen[child] = struct{}{}
	return nil
}

// Build finalizes the tree rooted at root. For a single-node tree (no edges
// at all), root must be supplied and becomes the tree's only node.
func (b *Builder) Build(root string) (*Tree, error) {
	if root == "" {
		return nil, ErrEmptyName
	}

	g := core.NewGraph(core.WithDirected(true))
	if err := g.AddVertex(root); err != nil {
		return nil, fmt.Errorf("tree: adding root: %w", err)
	}

	parentOf := make(map[string]string)
	for _, e := range b.order {
		if existing, ok := parentOf[e.child]; ok && existing != e.parent {
			return nil, ErrCycle
		}
		parentOf[e.child] = e.parent
		if _, err := g.AddEdge(e.parent, e.child, 0); err != nil {
			return nil, fmt.Errorf("tree: adding edge %s->%s: %w", e.parent, e.child, err)
		}
	}

	if _, isChild := parentOf[root]; isChild {
		return nil, ErrMultipleRoots
	}
	for n := range b.seen {
		if n == root {
			continue
		}
		if _, ok := parentOf[n]; !ok {
			return nil, ErrMultipleRoots
		}
	}

	return indexTree(g, root)
}

// indexTree walks g from root with an iterative pre-order DFS, assigning
// dense integer indices, Euler-tour tin/tout, depths, subtree tip counts,
// and ordered child lists, then builds the binary-lifting ancestor table
// used by LCA.
//
// Children are read off core.Graph.Neighbors and ordered by the numeric
// part of Edge.ID ("e1", "e2", ..., "e10"), i.e. by edge creation order;
// since edges were appended to g in the declaration order given to
// Builder.AddEdge, this reproduces the original left-to-right branch order
// with no separate bookkeeping.
func indexTree(g *core.Graph, root string) (*Tree, error) {
	t := &Tree{graph: g, root: root, id: make(map[string]int)}

	childNamesOf := func(nm string) ([]string, error) {
		edges, err := g.Neighbors(nm)
		if err != nil {
			return nil, err
		}
		// Neighbors sorts IDs as strings ("e10" before "e9"); a shorter ID
		// has a smaller counter, so compare by length first.
		sort.Slice(edges, func(i, j int) bool {
			a, b := edges[i].ID, edges[j].ID
			if len(a) != len(b) {
				return len(a) < len(b)
			}
			return a < b
		})
		out := make([]string, 0, len(edges))
		for _, e := range edges {
			if e.From == nm {
				out = append(out, e.To)
			}
		}
		return out, nil
	}

	visit := func(nm string, parentIdx, depth int) int {
		idx := len(t.name)
		t.id[nm] = idx
		t.name = append(t.name, nm)
		if parentIdx < 0 {
			t.parent = append(t.parent, idx) // root is its own parent, sentinel for "no parent"
		} else {
			t.parent = append(t.parent, parentIdx)
		}
		t.depth = append(t.depth, depth)
		t.tin = append(t.tin, 0)
		t.tout = append(t.tout, 0)
		t.tipCount = append(t.tipCount, 0)
		t.children = append(t.children, nil)
		t.isTip = append(t.isTip, false)
		return idx
	}

	clock := 0
	rootIdx := visit(root, -1, 0)
	t.tin[rootIdx] = clock
	clock++

	rootChildren, err := childNamesOf(root)
	if err != nil {
		return nil, err
	}

	type frame struct {
		idx   int
		names []string
		ci    int
	}
	stack := []frame{{idx: rootIdx, names: rootChildren}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.ci < len(top.names) {
			childName := top.names[top.ci]
			top.ci++
			childIdx := visit(childName, top.idx, t.depth[top.idx]+1)
			t.children[top.idx] = append(t.children[top.idx], childIdx)
			t.tin[childIdx] = clock
			clock++
			grandchildren, err := childNamesOf(childName)
			if err != nil {
				return nil, err
			}
			stack = append(stack, frame{idx: childIdx, names: grandchildren})
			continue
		}

		t.tout[top.idx] = clock
		clock++
		if len(t.children[top.idx]) == 0 {
			t.isTip[top.idx] = true
			t.tipCount[top.idx] = 1
		} else {
			sum := 0
			for _, c := range t.children[top.idx] {
				sum += t.tipCount[c]
			}
			t.tipCount[top.idx] = sum
		}
		stack = stack[:len(stack)-1]
	}

	if len(t.name) != g.VertexCount() {
		return nil, ErrDisconnected
	}

	buildAncestorTable(t)
	return t, nil
}

// buildAncestorTable fills t.up with the binary-lifting ancestor table:
// up[0][v] = parent[v], up[k][v] = up[k-1][up[k-1][v]]. log is the smallest
// value with 2^log >= n+1, so the jumps 2^0..2^(log-1) together
// (2^log - 1 >= n) cover the tree's maximum possible depth.
func buildAncestorTable(t *Tree) {
	n := len(t.name)
	log := 1
	for (1 << uint(log)) < n+1 {
		log++
	}
	t.up = make([][]int, log)
	t.up[0] = append([]int(nil), t.parent...)
	for k := 1; k < log; k++ {
		t.up[k] = make([]int, n)
		for v := 0; v < n; v++ {
			t.up[k][v] = t.up[k-1][t.up[k-1][v]]
		}
	}
}
