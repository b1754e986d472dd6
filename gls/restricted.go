package gls

import (
	"fmt"

	"github.com/arborlex/gainloss/pap"
	"github.com/arborlex/gainloss/tree"
)

// RestrictedSolver computes minimum-event-count gain-loss scenarios (spec
// §4.2) bounded by a maximum number of independent origins k, rather than by
// a weighted cost.
type RestrictedSolver struct {
	tree *tree.Tree

	// MaxHistories bounds the size of any single node's partial-history
	// list H(v) (spec §5's per-node memory ceiling). See WeightedSolver.
	MaxHistories int
}

// NewRestrictedSolver returns a solver bound to t, with MaxHistories set to
// DefaultMaxHistories.
func NewRestrictedSolver(t *tree.Tree) *RestrictedSolver {
	return &RestrictedSolver{tree: t, MaxHistories: DefaultMaxHistories}
}

// Solve returns the minimum-event-count admissible GLS for charKey, subject
// to at most k independent gains (origins) anywhere in the scenario.
func (s *RestrictedSolver) Solve(idx *pap.Index, charKey string, k int) (GLS, error) {
	if k <= 0 {
		return nil, ErrInvalidRestriction
	}

	sub, err := buildInferenceSubtree(s.tree, idx, charKey)
	if err != nil {
		return nil, err
	}
	if sub.allOnes {
		return GLS{{Name: sub.root, Gain: true}}, nil
	}

	maxHistories := s.MaxHistories
	if maxHistories <= 0 {
		maxHistories = DefaultMaxHistories
	}

	d := make(map[string][]history, len(sub.tipStates))
	for name, state := range sub.tipStates {
		d[name] = []history{{state: state}}
	}

	internals, err := internalNodesBottomUp(s.tree, sub.root)
	if err != nil {
		return nil, err
	}

	for _, node := range internals {
		children, err := s.tree.Children(node)
		if err != nil {
			return nil, err
		}
		if len(children) != 2 {
			return nil, fmt.Errorf("gls: node %q: %w", node, ErrNonBinaryTree)
		}
		nameA, nameB := children[0], children[1]
		histA, histB := d[nameA], d[nameB]

		var combined []history
		for _, hA := range histA {
			for _, hB := range histB {
				if hA.state == hB.state {
					tmp := concatEvents(hA.events, hB.events)
					gains := countGain(tmp)
					if hA.state {
						gains++
					}
					if gains <= k {
						combined = append(combined, history{state: hA.state, events: tmp})
					}
					continue
				}

				tmpA := concatEvents(hA.events, hB.events, Event{Name: nameB, Gain: hB.state})
				gainsA := countGain(tmpA)
				if hA.state {
					gainsA++
				}
				noA := hA.state && containsGain(tmpA)

				tmpB := concatEvents(hA.events, hB.events, Event{Name: nameA, Gain: hA.state})
				gainsB := countGain(tmpB)
				if hB.state {
					gainsB++
				}
				noB := hB.state && containsGain(tmpB)

				if gainsA <= k && !noA {
					combined = append(combined, history{state: hA.state, events: tmpA})
				}
				if gainsB <= k && !noB {
					combined = append(combined, history{state: hB.state, events: tmpB})
				}
				if len(combined) > maxHistories {
					return nil, fmt.Errorf("gls: character %q: %w", charKey, ErrSolverExhausted)
				}
			}
		}
		if len(combined) > maxHistories {
			return nil, fmt.Errorf("gls: character %q: %w", charKey, ErrSolverExhausted)
		}
		d[node] = combined
	}

	rootHistories := d[sub.root]
	if len(rootHistories) == 0 {
		return nil, fmt.Errorf("gls: character %q: %w", charKey, ErrSolverExhausted)
	}

	candidates := make([]GLS, 0, len(rootHistories))
	for _, h := range rootHistories {
		var scenario GLS
		if h.state {
			scenario = append(GLS{{Name: sub.root, Gain: true}}, h.events...)
		} else {
			scenario = append(GLS{}, h.events...)
		}
		candidates = append(candidates, scenario)
	}

	return selectRestricted(candidates)
}
