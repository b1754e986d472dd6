package network_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlex/gainloss/gls"
	"github.com/arborlex/gainloss/network"
)

// buildScenarioE reproduces spec Scenario E: three characters with origin
// sets {A,B}, {A,B}, {A,C} over nodes A, B, C.
func buildScenarioE() map[string]gls.GLS {
	mk := func(names ...string) gls.GLS {
		g := make(gls.GLS, len(names))
		for i, n := range names {
			g[i] = gls.Event{Name: n, Gain: true}
		}
		return g
	}
	return map[string]gls.GLS{
		"char1": mk("A", "B"),
		"char2": mk("A", "B"),
		"char3": mk("A", "C"),
	}
}

func TestBuild_PrimaryGraph(t *testing.T) {
	result, err := network.Build(context.Background(), []string{"A", "B", "C"}, buildScenarioE(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Primary.Weight("A", "B"))
	assert.Equal(t, int64(2), result.Primary.Weight("B", "A"))
	assert.Equal(t, int64(1), result.Primary.Weight("A", "C"))
	assert.Equal(t, int64(0), result.Primary.Weight("B", "C"))
}

func TestBuild_LateralGraph(t *testing.T) {
	result, err := network.Build(context.Background(), []string{"A", "B", "C"}, buildScenarioE(), 2)
	require.NoError(t, err)

	edges := result.Lateral.Edges(0)
	byPair := make(map[[2]string]network.LateralEdge, len(edges))
	for _, e := range edges {
		byPair[[2]string{e.From, e.To}] = e
	}

	ab, ok := byPair[[2]string{"A", "B"}]
	require.True(t, ok)
	assert.Equal(t, int64(2), ab.Weight)
	assert.ElementsMatch(t, []string{"char1", "char2"}, ab.Cogs)

	ac, ok := byPair[[2]string{"A", "C"}]
	require.True(t, ok)
	assert.Equal(t, int64(1), ac.Weight)
	assert.Equal(t, []string{"char3"}, ac.Cogs)
}

func TestBuild_Threshold(t *testing.T) {
	result, err := network.Build(context.Background(), []string{"A", "B", "C"}, buildScenarioE(), 1)
	require.NoError(t, err)

	assert.Len(t, result.Lateral.Edges(2), 1)
	assert.Len(t, result.Lateral.Edges(0), 2)
}

func TestBuild_PerCharacterLateral(t *testing.T) {
	result, err := network.Build(context.Background(), []string{"A", "B", "C"}, buildScenarioE(), 2)
	require.NoError(t, err)

	assert.Equal(t, [][2]string{{"A", "B"}}, result.PerCharacterLateral["char1"])
	assert.Equal(t, [][2]string{{"A", "C"}}, result.PerCharacterLateral["char3"])
}

func TestBuild_EmptyScenariosRejected(t *testing.T) {
	_, err := network.Build(context.Background(), []string{"A"}, map[string]gls.GLS{}, 1)
	assert.ErrorIs(t, err, network.ErrEmptyScenarios)
}
