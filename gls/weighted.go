package gls

import (
	"fmt"

	"github.com/arborlex/gainloss/pap"
	"github.com/arborlex/gainloss/tree"
)

// WeightedSolver computes minimum-weighted-cost gain-loss scenarios (spec
// §4.1) over a fixed tree, sharable read-only across every character and
// every goroutine dispatching a per-character solve.
type WeightedSolver struct {
	tree *tree.Tree

	// MaxHistories bounds the size of any single node's partial-history
	// list H(v) (spec §5's per-node memory ceiling). A character whose DP
	// exceeds this bound fails with ErrSolverExhausted rather than
	// growing unboundedly.
	MaxHistories int
}

// DefaultMaxHistories is the per-node history-list cap used when a solver's
// MaxHistories is left at zero.
const DefaultMaxHistories = 4096

// NewWeightedSolver returns a solver bound to t, with MaxHistories set to
// DefaultMaxHistories.
func NewWeightedSolver(t *tree.Tree) *WeightedSolver {
	return &WeightedSolver{tree: t, MaxHistories: DefaultMaxHistories}
}

// Solve returns the minimum-cost admissible GLS for charKey under the
// gain/loss cost ratio (gw, lw), selected per §4.3 (fewest gains wins ties).
func (s *WeightedSolver) Solve(idx *pap.Index, charKey string, gw, lw int64) (GLS, error) {
	if gw <= 0 || lw <= 0 {
		return nil, ErrInvalidRatio
	}

	sub, err := buildInferenceSubtree(s.tree, idx, charKey)
	if err != nil {
		return nil, err
	}
	if sub.allOnes {
		return GLS{{Name: sub.root, Gain: true}}, nil
	}

	ones, err := idx.Ones(charKey)
	if err != nil {
		return nil, err
	}
	zeros, err := idx.Zeros(charKey)
	if err != nil {
		return nil, err
	}
	maxWeight := minInt64(int64(ones)*gw, int64(zeros)*lw+gw)

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
					gains, losses := countGain(tmp), countLoss(tmp)
					if hA.state {
						gains++ // pending gain implicit in the propagated state
					}
					weight := gw*int64(gains) + lw*int64(losses)
					if weight <= maxWeight {
						combined = append(combined, history{state: hA.state, events: tmp})
					}
					continue
				}

				// keepA: A's state propagates upward, B's is committed as
				// an explicit event at nameB.
				tmpA := concatEvents(hA.events, hB.events, Event{Name: nameB, Gain: hB.state})
				gainsA, lossesA := countGain(tmpA), countLoss(tmpA)
				if hA.state {
					gainsA++
				}
				weightA := gw*int64(gainsA) + lw*int64(lossesA)
				noA := hA.state && containsGain(tmpA)

				// keepB: B's state propagates upward, A's is committed as
				// an explicit event at nameA.
				tmpB := concatEvents(hA.events, hB.events, Event{Name: nameA, Gain: hA.state})
				gainsB, lossesB := countGain(tmpB), countLoss(tmpB)
				if hB.state {
					gainsB++
				}
				weightB := gw*int64(gainsB) + lw*int64(lossesB)
				noB := hB.state && containsGain(tmpB)

				if weightA <= maxWeight && !noA {
					combined = append(combined, history{state: hA.state, events: tmpA})
				}
				if weightB <= maxWeight && !noB {
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

	return selectWeighted(candidates, gw, lw)
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
