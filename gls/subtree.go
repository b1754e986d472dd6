package gls

import (
	"fmt"

	"github.com/arborlex/gainloss/pap"
	"github.com/arborlex/gainloss/tree"
)

// inferenceSubtree bundles the information both solvers need before their
// DP loop: the subtree root (LCA of the character's positive tips), every
// tip dominated by it with its observed state, and whether every one of
// those tips is positive (the "all-ones" shortcut of spec §4.1/§4.2
// preliminaries, which also subsumes the single-positive-tip case: if only
// one taxon is positive, the LCA of a one-element set is that taxon itself,
// a tip whose own state is trivially 1).
type inferenceSubtree struct {
	root      string
	tipStates map[string]bool
	allOnes   bool
}

func buildInferenceSubtree(t *tree.Tree, idx *pap.Index, charKey string) (*inferenceSubtree, error) {
	vec, err := idx.Vector(charKey)
	if err != nil {
		return nil, err
	}
	taxa := idx.Taxa()

	var positive []string
	for i, present := range vec {
		if present {
			positive = append(positive, taxa[i])
		}
	}
	if len(positive) == 0 {
		return nil, fmt.Errorf("gls: character %q: %w", charKey, ErrEmptyCharacter)
	}

	root, err := t.LCASet(positive)
	if err != nil {
		return nil, err
	}
	tips, err := t.Tips(root)
	if err != nil {
		return nil, err
	}

	tipStates := make(map[string]bool, len(tips))
	allOnes := true
	for _, tip := range tips {
		ti, err := idx.TaxonIndex(tip)
		if err != nil {
			return nil, err
		}
		state := vec[ti]
		tipStates[tip] = state
		if !state {
			allOnes = false
		}
	}

	return &inferenceSubtree{root: root, tipStates: tipStates, allOnes: allOnes}, nil
}

// internalNodesBottomUp returns the internal (non-tip) nodes of the subtree
// rooted at root, in ascending subtree-tip-count order with root last —
// the order both solvers require for bottom-up combination (spec §4.1:
// "process internal nodes in order of increasing tip count, root last").
func internalNodesBottomUp(t *tree.Tree, root string) ([]string, error) {
	order, err := t.NodesByTipCountAsc(root)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(order))
	for _, name := range order {
		isLeaf, err := t.IsLeaf(name)
		if err != nil {
			return nil, err
		}
		if !isLeaf {
			out = append(out, name)
		}
	}
	return out, nil
}
