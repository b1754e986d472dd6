package tree

import (
	"errors"

	"github.com/arborlex/gainloss/core"
)

// Sentinel errors for tree construction and queries.
var (
	// ErrEmptyName indicates a node name was the empty string.
	ErrEmptyName = errors.New("tree: node name is empty")

	// ErrNoRoot names the case of a root absent from the builder's nodes.
	// Build does not return it: when edges exist and no AddEdge call names
	// the root, Build reports ErrMultipleRoots, and a Builder with no edges
	// at all builds the one-node tree named root.
	ErrNoRoot = errors.New("tree: root not found among builder nodes")

	// ErrCycle indicates the edges given to Builder do not form a tree: a
	// node was reachable from the root by more than one path, or some node
	// has more than one parent.
	ErrCycle = errors.New("tree: edges do not form a tree (cycle or reconvergence)")

	// ErrDisconnected indicates that some node named by AddEdge is not
	// reachable from the declared root.
	ErrDisconnected = errors.New("tree: node unreachable from root")

	// ErrMultipleRoots indicates more than one node has no parent, so there
	// is no unique root to build from.
	ErrMultipleRoots = errors.New("tree: more than one node has no parent")

	// ErrUnknownNode indicates a query referenced a name absent from the tree.
	ErrUnknownNode = errors.New("tree: unknown node")
)

// Tree is an immutable rooted tree: a directed, unweighted, loop-free
// *core.Graph with edges parent→child, plus the index structures needed to
// answer children/tips/lca/nontips queries in the time bounds the gain-loss
// solver and the network builder rely on.
//
// A Tree is built once by Builder.Build and never mutated afterward; every
// query method is safe for concurrent use by multiple goroutines (the
// underlying core.Graph read paths already serialize via its own RWMutex,
// and the index maps built at construction time are read-only thereafter).
type Tree struct {
	graph *core.Graph
	root  string

	id       map[string]int // name -> dense index, assigned in preOrder
	name     []string       // index -> name, name[id[n]] == n
	parent   []int          // index -> parent index, parent[rootIdx] == rootIdx
	depth    []int          // index -> depth from root (root is 0)
	tin      []int          // index -> Euler-tour entry time
	tout     []int          // index -> Euler-tour exit time
	tipCount []int          // index -> number of tips in the subtree rooted there
	children [][]int        // index -> child indices, in original branch order
	isTip    []bool         // index -> true iff the node has no children

	up [][]int // up[k][v] = 2^k-th ancestor of v, or root's own index past the top
}

// Root returns the name of the tree's root node.
func (t *Tree) Root() string { return t.root }

// Size returns the total number of nodes (tips and internals) in the tree.
func (t *Tree) Size() int { return len(t.name) }

// Graph exposes the read-only *core.Graph backing this tree, for callers
// that need to run a generic graph algorithm (e.g. a view or a filter) over
// the tree's topology.
func (t *Tree) Graph() *core.Graph { return t.graph }

func (t *Tree) idOf(name string) (int, error) {
	i, ok := t.id[name]
	if !ok {
		return 0, ErrUnknownNode
	}
	return i, nil
}
