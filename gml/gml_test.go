package gml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlex/gainloss/gml"
)

const sampleGML = `graph [
  directed 0
  node [
    id 0
    label "root"
    graphics [ x 1.5 y 2.5 ]
  ]
  node [
    id 1
    label "a"
    graphics [ x 3 y 4 ]
  ]
]`

func TestReadLayout(t *testing.T) {
	layout, err := gml.ReadLayout(strings.NewReader(sampleGML))
	require.NoError(t, err)

	pos, ok := layout.Positions["root"]
	require.True(t, ok)
	assert.Equal(t, 1.5, pos.X)
	assert.Equal(t, 2.5, pos.Y)

	pos, ok = layout.Positions["a"]
	require.True(t, ok)
	assert.Equal(t, 3.0, pos.X)
}

func TestWriteNetwork(t *testing.T) {
	layout := &gml.Layout{Positions: map[string]gml.NodePosition{
		"root": {X: 0, Y: 0},
		"a":    {X: 1, Y: 1},
	}}
	edges := []gml.NetworkEdge{
		{Source: "root", Target: "a", Kind: gml.Vertical, Weight: 0},
		{Source: "root", Target: "b", Kind: gml.Horizontal, Weight: 2, Cogs: []string{"c1", "c2"}, Color: "#ff0000"},
	}

	var sb strings.Builder
	require.NoError(t, gml.WriteNetwork(&sb, layout, edges))

	out := sb.String()
	assert.Contains(t, out, `label "vertical"`)
	assert.Contains(t, out, `label "horizontal"`)
	assert.Contains(t, out, `cogs "c1,c2"`)
	assert.Contains(t, out, `fill "#ff0000"`)
}

func TestReadLayout_SyntaxError(t *testing.T) {
	_, err := gml.ReadLayout(strings.NewReader("not gml at all"))
	assert.Error(t, err)
}
