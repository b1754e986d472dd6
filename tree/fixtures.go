package tree

import "fmt"

// Balanced builds a perfect binary tree of the given depth (depth == 0
// yields a single-tip tree "t0"). The root is named "root", other internal
// nodes "n<level>_<idx>" and tips "t<idx>", both numbered left to right,
// deterministic for a
// fixed depth — grounded in the teacher builder's deterministic-ID-scheme
// pattern (cfg.idFn producing "v0", "v1", ... in ascending index order).
func Balanced(depth int) (*Tree, error) {
	if depth < 0 {
		return nil, fmt.Errorf("tree: negative depth %d", depth)
	}
	if depth == 0 {
		b := NewBuilder()
		return b.Build("t0")
	}

	b := NewBuilder()
	tipCounter := 0
	nodeName := func(level, idx int) string {
		if level == depth {
			n := tipCounter
			tipCounter++
			return fmt.Sprintf("t%d", n)
		}
		if level == 0 {
			return "root"
		}
		return fmt.Sprintf("n%d_%d", level, idx)
	}

	var link func(level, idx int) string
	link = func(level, idx int) string {
		self := nodeName(level, idx)
		if level == depth {
			return self
		}
		left := link(level+1, idx*2)
		right := link(level+1, idx*2+1)
		_ = b.AddEdge(self, left)
		_ = b.AddEdge(self, right)
		return self
	}
	link(0, 0)

	return b.Build("root")
}

// Caterpillar builds a ladder tree of n tips: a chain of internal nodes
// "n0","n1",...,"n<n-2>" where n<i> is the parent of tip "t<i>" and of
// n<i+1>, with the final internal node n<n-2> instead parenting both
// "t<n-2>" and "t<n-1>". n must be at least 2. This is the classic
// worst-case shape for algorithms that are accidentally quadratic in tree
// depth rather than tip count, and a direct structural analogue of the
// teacher builder's Path(n) constructor applied to internal nodes with a
// tip hung off each rung.
func Caterpillar(n int) (*Tree, error) {
	if n < 2 {
		return nil, fmt.Errorf("tree: caterpillar requires at least 2 tips, got %d", n)
	}

	b := NewBuilder()
	root := "n0"
	for i := 0; i < n-2; i++ {
		internal := fmt.Sprintf("n%d", i)
		next := fmt.Sprintf("n%d", i+1)
		tip := fmt.Sprintf("t%d", i)
		if err := b.AddEdge(internal, tip); err != nil {
			return nil, err
		}
		if err := b.AddEdge(internal, next); err != nil {
			return nil, err
		}
	}
	last := fmt.Sprintf("n%d", n-2)
	if err := b.AddEdge(last, fmt.Sprintf("t%d", n-2)); err != nil {
		return nil, err
	}
	if err := b.AddEdge(last, fmt.Sprintf("t%d", n-1)); err != nil {
		return nil, err
	}

	return b.Build(root)
}
