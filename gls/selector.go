package gls

import "sort"

// selectWeighted picks the minimum-weighted-cost scenario among candidates,
// breaking ties by fewest gains (spec §4.3: "ties favour fewer origins").
// The sort is stable so that, among equal cost and equal gain count, the
// first-produced candidate — the earliest in the solver's fixed combination
// order — wins, preserving determinism (spec testable property 6).
func selectWeighted(candidates []GLS, gw, lw int64) (GLS, error) {
	if len(candidates) == 0 {
		return nil, ErrSolverExhausted
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i].Cost(gw, lw), candidates[j].Cost(gw, lw)
		if ci != cj {
			return ci < cj
		}
		return candidates[i].Gains() < candidates[j].Gains()
	})
	return candidates[0], nil
}

// selectRestricted picks the minimum-event-count scenario among candidates,
// breaking ties by fewest gains, mirroring the unweighted cost used by the
// restricted solver (spec §4.2/§4.3).
func selectRestricted(candidates []GLS) (GLS, error) {
	if len(candidates) == 0 {
		return nil, ErrSolverExhausted
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		li, lj := len(candidates[i]), len(candidates[j])
		if li != lj {
			return li < lj
		}
		return candidates[i].Gains() < candidates[j].Gains()
	})
	return candidates[0], nil
}
