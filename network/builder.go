package network

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arborlex/gainloss/core"
	"github.com/arborlex/gainloss/gls"
	"github.com/arborlex/gainloss/mst"
)

// const used as the complete-graph scale factor of spec §4.5 step 2:
// W_c[u,v] = 1_000_000 / G_P[u,v] (integer division).
const weightScale = 1_000_000

// Build constructs G_P and G_L from a set of solved per-character scenarios
// (keyed by character key), dispatching per-character work across at most
// workers goroutines (spec §5). nodes is every tree node name: G_P is
// initialised over the full tree, not just nodes that end up as an origin.
// workers <= 0 is treated as 1.
func Build(ctx context.Context, nodes []string, scenarios map[string]gls.GLS, workers int) (*Result, error) {
	if len(scenarios) == 0 {
		return nil, ErrEmptyScenarios
	}
	if workers <= 0 {
		workers = 1
	}

	origins := make(map[string][]string, len(scenarios))
	for charKey, scenario := range scenarios {
		origins[charKey] = scenario.Origins()
	}

	primary := &PrimaryGraph{g: core.NewGraph(core.WithWeighted())}
	for _, n := range nodes {
		if err := primary.g.AddVertex(n); err != nil {
			return nil, err
		}
	}

	grp, _ := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for _, o := range origins {
		o := o
		grp.Go(func() error {
			for i := 0; i < len(o); i++ {
				for j := i + 1; j < len(o); j++ {
					if _, err := primary.g.IncrementEdgeWeight(o[i], o[j], 1); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	lateral := newLateralGraph()
	perCharacter := struct {
		mu    sync.Mutex
		edges map[string][][2]string
	}{edges: make(map[string][][2]string, len(origins))}

	grp, _ = errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for charKey, o := range origins {
		charKey, o := charKey, o
		if len(o) < 2 {
			continue
		}
		grp.Go(func() error {
			mstEdges, err := overlayLateralMST(primary, lateral, charKey, o)
			if err != nil {
				return err
			}
			perCharacter.mu.Lock()
			perCharacter.edges[charKey] = mstEdges
			perCharacter.mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return &Result{Primary: primary, Lateral: lateral, PerCharacterLateral: perCharacter.edges}, nil
}

// overlayLateralMST builds the complete weight graph W_c over a single
// character's origin set, computes its MST, folds each MST edge into the
// shared lateral graph (spec §4.5 step 2), and returns the edges as (u,v)
// name pairs for the per-character lateral-events report.
func overlayLateralMST(primary *PrimaryGraph, lateral *LateralGraph, charKey string, origins []string) ([][2]string, error) {
	w := core.NewGraph(core.WithWeighted())
	for _, n := range origins {
		if err := w.AddVertex(n); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(origins); i++ {
		for j := i + 1; j < len(origins); j++ {
			u, v := origins[i], origins[j]
			gp := primary.Weight(u, v)
			if gp < 1 {
				gp = 1 // co-occurrence in this character's own origin set guarantees G_P[u,v] >= 1
			}
			weight := weightScale / gp
			if _, err := w.AddEdge(u, v, weight); err != nil {
				return nil, err
			}
		}
	}

	result, err := mst.Kruskal(w)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]string, 0, len(result.Edges))
	for _, e := range result.Edges {
		if err := lateral.accumulate(e.From, e.To, charKey); err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]string{e.From, e.To})
	}
	return pairs, nil
}
