// Package network builds the evolutionary network of spec §4.5: a primary
// co-origin graph G_P over every tree node, and a per-character lateral MST
// overlay G_L built from G_P and thresholded on emission.
package network

import (
	"errors"
	"sort"
	"sync"

	"github.com/arborlex/gainloss/core"
)

// ErrEmptyScenarios indicates Build was called with no character scenarios.
var ErrEmptyScenarios = errors.New("network: no character scenarios supplied")

// PrimaryGraph is G_P: an undirected weighted core.Graph over tree node
// names, where the weight of (u,v) is the number of characters that
// originate at both u and v.
type PrimaryGraph struct {
	g *core.Graph
}

// Weight returns G_P[u,v], or 0 if u and v never co-originate.
func (p *PrimaryGraph) Weight(u, v string) int64 {
	w, ok := p.g.EdgeWeight(u, v)
	if !ok {
		return 0
	}
	return w
}

// Graph exposes the underlying core.Graph for inspection or export.
func (p *PrimaryGraph) Graph() *core.Graph { return p.g }

// LateralEdge is one accumulated edge of G_L: a weight (the number of
// characters whose per-character MST used this edge) and the character keys
// that contributed it.
type LateralEdge struct {
	From, To string
	Weight   int64
	Cogs     []string
}

// LateralGraph is G_L: the per-character MST overlay, accumulated across
// every character with at least two origins.
type LateralGraph struct {
	mu   sync.Mutex
	g    *core.Graph
	cogs map[string][]string // keyed by pairKey(u,v)
}

func newLateralGraph() *LateralGraph {
	return &LateralGraph{
		g:    core.NewGraph(core.WithWeighted()),
		cogs: make(map[string][]string),
	}
}

// accumulate increments the (u,v) edge weight by one and appends cogKey to
// its contributor list. Safe for concurrent callers.
func (l *LateralGraph) accumulate(u, v, cogKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.g.IncrementEdgeWeight(u, v, 1); err != nil {
		return err
	}
	key := pairKey(u, v)
	l.cogs[key] = append(l.cogs[key], cogKey)
	return nil
}

// Edges returns every accumulated lateral edge with weight >= threshold,
// sorted by descending weight then lexicographic (From, To) — spec §4.5
// step 3's thresholding, applied at emission time so lower-weight edges
// stay in the graph (a call with a lower threshold returns them) even when
// excluded from a given report.
func (l *LateralGraph) Edges(threshold int64) []LateralEdge {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []LateralEdge
	for _, e := range l.g.Edges() {
		if e.Weight < threshold {
			continue
		}
		out = append(out, LateralEdge{
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			Cogs:   append([]string(nil), l.cogs[pairKey(e.From, e.To)]...),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Graph exposes the underlying core.Graph for inspection or export.
func (l *LateralGraph) Graph() *core.Graph { return l.g }

func pairKey(u, v string) string {
	if u > v {
		u, v = v, u
	}
	return u + "\x00" + v
}

// Result bundles both graphs produced by Build, plus the per-character
// lateral MST edges needed by the lateral-events CSV report (spec §6).
type Result struct {
	Primary             *PrimaryGraph
	Lateral             *LateralGraph
	PerCharacterLateral map[string][][2]string
}
