// Package ancestral implements the ancestral-state projector of spec §4.4:
// given a gain-loss scenario for a single character and the tree it was
// computed over, it reconstructs the character's presence/absence state at
// every internal node.
package ancestral

import (
	"sort"

	"github.com/arborlex/gainloss/gls"
	"github.com/arborlex/gainloss/tree"
)

// States maps internal-node name to reconstructed presence state.
type States map[string]bool

// Project reconstructs the per-internal-node ancestral states implied by
// scenario over t: the root's state is whatever the scenario says at the
// subtree root (gain if scenario contains a root gain event, absent
// otherwise), every internal node initially inherits that root state, and
// each scenario event overwrites the state of its own subtree — processed
// in descending subtree-tip-count order so that an outer event is applied
// before an inner one can override it (spec Scenario F).
func Project(t *tree.Tree, root string, scenario gls.GLS) (States, error) {
	nonTips, err := t.NonTips(root)
	if err != nil {
		return nil, err
	}

	rootState := false
	for _, e := range scenario {
		if e.Name == root && e.Gain {
			rootState = true
			break
		}
	}

	states := make(States, len(nonTips))
	for _, name := range nonTips {
		states[name] = rootState
	}

	events := make(gls.GLS, len(scenario))
	copy(events, scenario)
	tipCount := make(map[string]int, len(events))
	for _, e := range events {
		tc, err := t.TipCount(e.Name)
		if err != nil {
			return nil, err
		}
		tipCount[e.Name] = tc
	}
	sort.SliceStable(events, func(i, j int) bool {
		return tipCount[events[i].Name] > tipCount[events[j].Name]
	})

	for _, e := range events {
		isLeaf, err := t.IsLeaf(e.Name)
		if err != nil {
			return nil, err
		}
		if isLeaf {
			continue
		}
		sub, err := t.NonTips(e.Name)
		if err != nil {
			return nil, err
		}
		for _, name := range sub {
			states[name] = e.Gain
		}
	}

	return states, nil
}
