// Package stats implements the distribution analyser of spec §4.6:
// contemporary and ancestral vocabulary-size distributions and a two-sample
// Mann-Whitney U comparison between them.
package stats

import (
	"github.com/arborlex/gainloss/ancestral"
	"github.com/arborlex/gainloss/pap"
)

// ContemporaryVocabSizes returns, per taxon in idx.Taxa() order, the count
// of distinct non-singleton characters present in that taxon (spec §4.6's
// "Contemporary vocabulary size").
func ContemporaryVocabSizes(idx *pap.Index) ([]float64, error) {
	taxa := idx.Taxa()
	sizes := make([]float64, len(taxa))
	for _, charKey := range idx.NonSingletonCharacters() {
		vec, err := idx.Vector(charKey)
		if err != nil {
			return nil, err
		}
		for i, present := range vec {
			if present {
				sizes[i]++
			}
		}
	}
	return sizes, nil
}

// AncestralVocabSizes returns, per internal node in nodes, the count of
// characters whose projected ancestral state (spec §4.4) is present at
// that node, given the per-character ancestral projections in projections.
func AncestralVocabSizes(nodes []string, projections []ancestral.States) []float64 {
	sizes := make([]float64, len(nodes))
	for _, states := range projections {
		for i, n := range nodes {
			if states[n] {
				sizes[i]++
			}
		}
	}
	return sizes
}
