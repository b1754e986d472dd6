package wordlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlex/gainloss/wordlist"
)

const sampleCSV = `id,taxon,cogid,concept
1,a,cog1,hand
2,b,cog1,hand
3,a,cog2,foot
`

func TestLoad(t *testing.T) {
	rows, taxa, err := wordlist.Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b"}, taxa)
	assert.Equal(t, "cog1", rows[0].Cogid)
}

func TestBuildIndex(t *testing.T) {
	idx, err := wordlist.BuildIndex(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	vec, err := idx.Vector("cog1:hand")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, vec)
}

func TestLoad_MissingColumn(t *testing.T) {
	_, _, err := wordlist.Load(strings.NewReader("id,taxon\n1,a\n"))
	assert.ErrorIs(t, err, wordlist.ErrMissingColumn)
}
