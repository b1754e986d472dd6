package tree

import "sort"

// IsLeaf reports whether name is a tip (has no children).
func (t *Tree) IsLeaf(name string) (bool, error) {
	i, err := t.idOf(name)
	if err != nil {
		return false, err
	}
	return t.isTip[i], nil
}

// TipCount returns the number of tips in the subtree rooted at name
// (1 if name is itself a tip).
func (t *Tree) TipCount(name string) (int, error) {
	i, err := t.idOf(name)
	if err != nil {
		return 0, err
	}
	return t.tipCount[i], nil
}

// Parent returns the name of name's parent, or ("", false) if name is the
// root.
func (t *Tree) Parent(name string) (string, bool, error) {
	i, err := t.idOf(name)
	if err != nil {
		return "", false, err
	}
	if i == t.parent[i] {
		return "", false, nil
	}
	return t.name[t.parent[i]], true, nil
}

// Children returns the names of name's direct children, in original
// left-to-right branch order. A tip returns an empty slice.
func (t *Tree) Children(name string) ([]string, error) {
	i, err := t.idOf(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.children[i]))
	for j, c := range t.children[i] {
		out[j] = t.name[c]
	}
	return out, nil
}

// Tips returns the names of every tip in the subtree rooted at name, in
// ascending tin order (left-to-right as declared).
func (t *Tree) Tips(name string) ([]string, error) {
	i, err := t.idOf(name)
	if err != nil {
		return nil, err
	}
	var out []string
	for j := 0; j < len(t.name); j++ {
		if t.isTip[j] && t.isDescendantIdx(j, i) {
			out = append(out, t.name[j])
		}
	}
	sort.Slice(out, func(a, b int) bool { return t.tin[t.id[out[a]]] < t.tin[t.id[out[b]]] })
	return out, nil
}

// NonTips returns the names of every internal (non-tip) node in the
// subtree rooted at name, including name itself if it is internal, in
// ascending tin order.
func (t *Tree) NonTips(name string) ([]string, error) {
	i, err := t.idOf(name)
	if err != nil {
		return nil, err
	}
	var out []string
	for j := 0; j < len(t.name); j++ {
		if !t.isTip[j] && t.isDescendantIdx(j, i) {
			out = append(out, t.name[j])
		}
	}
	sort.Slice(out, func(a, b int) bool { return t.tin[t.id[out[a]]] < t.tin[t.id[out[b]]] })
	return out, nil
}

// Ancestors returns the chain of ancestor names from name's parent up to
// and including the root. An empty slice is returned for the root itself.
func (t *Tree) Ancestors(name string) ([]string, error) {
	i, err := t.idOf(name)
	if err != nil {
		return nil, err
	}
	var out []string
	for i != t.parent[i] {
		i = t.parent[i]
		out = append(out, t.name[i])
	}
	return out, nil
}

// IsDescendant reports whether descendant lies within the subtree rooted
// at ancestor (an node is its own descendant).
func (t *Tree) IsDescendant(descendant, ancestor string) (bool, error) {
	d, err := t.idOf(descendant)
	if err != nil {
		return false, err
	}
	a, err := t.idOf(ancestor)
	if err != nil {
		return false, err
	}
	return t.isDescendantIdx(d, a), nil
}

func (t *Tree) isDescendantIdx(d, a int) bool {
	return t.tin[a] <= t.tin[d] && t.tout[d] <= t.tout[a]
}

// LCA returns the lowest common ancestor of two named nodes.
func (t *Tree) LCA(x, y string) (string, error) {
	xi, err := t.idOf(x)
	if err != nil {
		return "", err
	}
	yi, err := t.idOf(y)
	if err != nil {
		return "", err
	}
	return t.name[t.lcaIdx(xi, yi)], nil
}

// LCASet returns the lowest common ancestor of an arbitrary, non-empty set
// of named nodes, folding pairwise LCA queries left to right.
func (t *Tree) LCASet(names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrUnknownNode
	}
	acc, err := t.idOf(names[0])
	if err != nil {
		return "", err
	}
	for _, nm := range names[1:] {
		i, err := t.idOf(nm)
		if err != nil {
			return "", err
		}
		acc = t.lcaIdx(acc, i)
	}
	return t.name[acc], nil
}

func (t *Tree) lcaIdx(u, v int) int {
	if t.isDescendantIdx(v, u) {
		return u
	}
	if t.isDescendantIdx(u, v) {
		return v
	}
	for k := len(t.up) - 1; k >= 0; k-- {
		if up := t.up[k][u]; !t.isDescendantIdx(v, up) {
			u = up
		}
	}
	return t.up[0][u]
}

// NodesByTipCountAsc returns every node in the subtree rooted at subtreeRoot
// (including subtreeRoot), ordered by ascending subtree tip count, with
// subtreeRoot guaranteed last. Ties (equal tip count) break by ascending tin
// order (original declaration order), which the gain-loss solver relies on
// for a reproducible bottom-up processing schedule.
func (t *Tree) NodesByTipCountAsc(subtreeRoot string) ([]string, error) {
	r, err := t.idOf(subtreeRoot)
	if err != nil {
		return nil, err
	}
	var idxs []int
	for j := 0; j < len(t.name); j++ {
		if t.isDescendantIdx(j, r) {
			idxs = append(idxs, j)
		}
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		ia, ib := idxs[a], idxs[b]
		if t.tipCount[ia] != t.tipCount[ib] {
			return t.tipCount[ia] < t.tipCount[ib]
		}
		return t.tin[ia] < t.tin[ib]
	})
	out := make([]string, len(idxs))
	for i, j := range idxs {
		out[i] = t.name[j]
	}
	return out, nil
}

// PreOrder returns every node name in pre-order (root first, each node
// preceding its descendants). Indices are assigned in this same order at
// build time, so this is a direct copy of the internal name table.
func (t *Tree) PreOrder() []string {
	out := make([]string, len(t.name))
	copy(out, t.name)
	return out
}
