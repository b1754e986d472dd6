// Package gls implements the bottom-up dynamic-program gain-loss-scenario
// solvers of spec §4.1/§4.2 (weighted and restricted) and the scenario
// selector of §4.3. The ancestral-state projector of §4.4 lives in package
// ancestral.
//
// Both solvers are a direct structural translation of the original TreBor
// implementation's get_weighted_gls/get_restricted_gls (see
// original_source/trebor.py): a per-node list of admissible partial
// histories, combined bottom-up over a strictly bifurcating tree, pruned by
// an admissibility bound that differs between the two modes.
package gls

import "errors"

// Sentinel errors for GLS inference.
var (
	// ErrEmptyCharacter indicates a character with zero positive tips
	// (spec §7 EmptyCharacter). Callers should skip the character with a
	// warning rather than treat this as fatal.
	ErrEmptyCharacter = errors.New("gls: character has no positive tips")

	// ErrNonBinaryTree indicates an internal node in the subtree does not
	// have exactly two children. Both solvers assume a strictly
	// bifurcating tree, matching the original TreBor algorithm's
	// `nameA,nameB = node.Children` unpacking.
	ErrNonBinaryTree = errors.New("gls: internal node does not have exactly two children")

	// ErrSolverExhausted indicates the per-character memory/history budget
	// was exceeded, or the admissibility bound left zero histories at the
	// subtree root (spec §7 SolverExhausted). The character should be
	// reported with an empty GLS and contribute zero origins downstream.
	ErrSolverExhausted = errors.New("gls: solver exhausted without an admissible scenario")

	// ErrInvalidRatio indicates a non-positive gain or loss weight was
	// supplied to the weighted solver.
	ErrInvalidRatio = errors.New("gls: gain/loss weights must be positive")

	// ErrInvalidRestriction indicates a non-positive maximum-gains bound
	// was supplied to the restricted solver.
	ErrInvalidRestriction = errors.New("gls: restriction bound must be positive")
)

// Event is one (node_name, event) pair of a gain-loss scenario: at name,
// the character's state changes to Gain (true = gain/1, false = loss/0).
type Event struct {
	Name string
	Gain bool
}

// GLS is a gain-loss scenario: an ordered set of Events. Order is not
// semantically meaningful (spec §3 treats a GLS as a set), but both solvers
// emit events in a fixed, reproducible order (child A's history before
// child B's, innermost commits first) so that repeated runs on the same
// input are byte-identical (spec testable property 6).
type GLS []Event

// Gains returns the number of gain (event=1) entries.
func (g GLS) Gains() int {
	n := 0
	for _, e := range g {
		if e.Gain {
			n++
		}
	}
	return n
}

// Losses returns the number of loss (event=0) entries.
func (g GLS) Losses() int {
	n := 0
	for _, e := range g {
		if !e.Gain {
			n++
		}
	}
	return n
}

// Cost returns gw*Gains() + lw*Losses(), the weighted scenario cost of
// spec §3 ("Scenario cost").
func (g GLS) Cost(gw, lw int64) int64 {
	return gw*int64(g.Gains()) + lw*int64(g.Losses())
}

// Origins returns the names at which the character originates (event=1),
// i.e. the origin set O_c of spec §4.5, in GLS order.
func (g GLS) Origins() []string {
	out := make([]string, 0, len(g))
	for _, e := range g {
		if e.Gain {
			out = append(out, e.Name)
		}
	}
	return out
}

// history is one partial ancestral-state history tracked at a node during
// bottom-up combination: state is the value attributed to the node itself,
// events is the list of (descendant_name, event) pairs already committed
// strictly below it.
type history struct {
	state  bool
	events []Event
}

// concatEvents returns a fresh slice holding a's elements followed by b's,
// optionally followed by extra — mirroring Python's list concatenation
// nodeA[1] + nodeB[1] (+ [extra]) so that event order (and therefore GLS
// determinism) matches the original algorithm exactly.
func concatEvents(a, b []Event, extra ...Event) []Event {
	out := make([]Event, 0, len(a)+len(b)+len(extra))
	out = append(out, a...)
	out = append(out, b...)
	out = append(out, extra...)
	return out
}

func containsGain(events []Event) bool {
	for _, e := range events {
		if e.Gain {
			return true
		}
	}
	return false
}

func countGain(events []Event) int {
	n := 0
	for _, e := range events {
		if e.Gain {
			n++
		}
	}
	return n
}

func countLoss(events []Event) int {
	return len(events) - countGain(events)
}
