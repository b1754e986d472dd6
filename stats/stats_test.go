package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlex/gainloss/ancestral"
	"github.com/arborlex/gainloss/pap"
	"github.com/arborlex/gainloss/stats"
)

func TestContemporaryVocabSizes(t *testing.T) {
	b, err := pap.NewBuilder([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, b.Add("a", "char1"))
	require.NoError(t, b.Add("b", "char1"))
	require.NoError(t, b.Add("a", "char2")) // singleton, excluded
	idx, err := b.Build()
	require.NoError(t, err)

	sizes, err := stats.ContemporaryVocabSizes(idx)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, sizes)
}

func TestAncestralVocabSizes(t *testing.T) {
	nodes := []string{"root", "X"}
	projections := []ancestral.States{
		{"root": true, "X": true},
		{"root": true, "X": false},
	}
	sizes := stats.AncestralVocabSizes(nodes, projections)
	assert.Equal(t, []float64{2, 1}, sizes)
}

func TestMannWhitneyU_IdenticalDistributions(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 2, 3, 4, 5}
	result := stats.MannWhitneyU(x, y)
	assert.InDelta(t, 1.0, result.PValue, 0.05)
}

func TestMannWhitneyU_SeparatedDistributions(t *testing.T) {
	x := []float64{10, 11, 12, 13, 14}
	y := []float64{1, 2, 3, 4, 5}
	result := stats.MannWhitneyU(x, y)
	assert.Less(t, result.PValue, 0.05)
}

func TestDescribe(t *testing.T) {
	mean, stddev := stats.Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-9)
	assert.Greater(t, stddev, 0.0)
}
