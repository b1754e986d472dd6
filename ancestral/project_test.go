package ancestral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlex/gainloss/ancestral"
	"github.com/arborlex/gainloss/gls"
	"github.com/arborlex/gainloss/tree"
)

// buildScenarioFTree builds ((a,b)X,(c,d)Y)root; — spec Scenario F.
func buildScenarioFTree(t *testing.T) *tree.Tree {
	t.Helper()
	b := tree.NewBuilder()
	require.NoError(t, b.AddEdge("root", "X"))
	require.NoError(t, b.AddEdge("X", "a"))
	require.NoError(t, b.AddEdge("X", "b"))
	require.NoError(t, b.AddEdge("root", "Y"))
	require.NoError(t, b.AddEdge("Y", "c"))
	require.NoError(t, b.AddEdge("Y", "d"))
	tr, err := b.Build("root")
	require.NoError(t, err)
	return tr
}

func TestProject_ScenarioF(t *testing.T) {
	tr := buildScenarioFTree(t)
	scenario := gls.GLS{
		{Name: "root", Gain: true},
		{Name: "Y", Gain: false},
		{Name: "c", Gain: true},
	}

	states, err := ancestral.Project(tr, "root", scenario)
	require.NoError(t, err)

	assert.Equal(t, true, states["root"])
	assert.Equal(t, true, states["X"])
	assert.Equal(t, false, states["Y"])
}

func TestProject_NoGainAtRoot(t *testing.T) {
	tr := buildScenarioFTree(t)
	scenario := gls.GLS{{Name: "X", Gain: true}}

	states, err := ancestral.Project(tr, "root", scenario)
	require.NoError(t, err)

	assert.Equal(t, false, states["root"])
	assert.Equal(t, true, states["X"])
	assert.Equal(t, false, states["Y"])
}
