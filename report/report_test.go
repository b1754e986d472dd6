package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlex/gainloss/gls"
	"github.com/arborlex/gainloss/report"
)

func TestWriteGLS(t *testing.T) {
	scenarios := map[string]gls.GLS{
		"cog1:hand": {{Name: "root", Gain: true}, {Name: "b", Gain: false}},
	}

	var sb strings.Builder
	require.NoError(t, report.WriteGLS(&sb, scenarios))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, "PAP\tGainLossScenario\tNumberOfOrigins\n", lines[0]+"\n")
	assert.Equal(t, "cog1:hand\troot:1,b:0\t1", lines[1])
}

func TestWriteStats_Weighted(t *testing.T) {
	ratio := [2]int64{1, 1}
	var sb strings.Builder
	require.NoError(t, report.WriteStats(&sb, report.ModeStats{
		TotalPAPs:        10,
		NonSingletonPAPs: 8,
		Singletons:       2,
		AverageOrigins:   1.25,
		MaxOrigins:       3,
		Mode:             "weighted",
		Ratio:            &ratio,
	}))

	assert.Contains(t, sb.String(), "Ratio: 1 / 1\n")
	assert.Contains(t, sb.String(), "Average Number of Origins: 1.25\n")
}

func TestWriteStats_Restricted(t *testing.T) {
	k := 2
	var sb strings.Builder
	require.NoError(t, report.WriteStats(&sb, report.ModeStats{Mode: "restriction", Restriction: &k}))
	assert.Contains(t, sb.String(), "Restriction: 2\n")
}

func TestWriteLateralCSV(t *testing.T) {
	edges := map[string][][2]string{
		"cog1:hand": {{"a", "b"}},
	}
	var sb strings.Builder
	require.NoError(t, report.WriteLateralCSV(&sb, edges))
	assert.Equal(t, "cog1:hand\ta:b\n", sb.String())
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "w-1-2", report.WeightedModeString(1, 2))
	assert.Equal(t, "r-3", report.RestrictedModeString(3))
}
