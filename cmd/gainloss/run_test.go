package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlex/gainloss/config"
)

const fixtureCSV = `id,taxon,cogid,concept
1,a,cog1,hand
2,b,cog1,hand
3,c,cog2,foot
`

const fixtureTree = `((a,b),c);`

func writeFixtures(t *testing.T) (dir string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.csv"), []byte(fixtureCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tree.nwk"), []byte(fixtureTree), 0o644))
	return dir
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunDataset_WeightedMode(t *testing.T) {
	dir := writeFixtures(t)
	cfg := &config.Config{
		Dataset:   "fixture",
		Wordlist:  filepath.Join(dir, "words.csv"),
		Tree:      filepath.Join(dir, "tree.nwk"),
		OutputDir: dir,
		Modes:     []string{"w-1-1"},
		Threshold: 0,
		Workers:   2,
	}

	err := RunDataset(context.Background(), discardLogger(), cfg)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "gls", "fixture-w-1-1.gls"))
	assert.FileExists(t, filepath.Join(dir, "stats", "fixture-w-1-1"))
	assert.FileExists(t, filepath.Join(dir, "fixture-w-1-1.csv"))
	assert.FileExists(t, filepath.Join(dir, "fixture-w-1-1.gml"))
	assert.FileExists(t, filepath.Join(dir, "fixture-dataset.stats"))

	glsBytes, err := os.ReadFile(filepath.Join(dir, "gls", "fixture-w-1-1.gls"))
	require.NoError(t, err)
	assert.Contains(t, string(glsBytes), "cog1:hand")
}

func TestRunDataset_RestrictedMode(t *testing.T) {
	dir := writeFixtures(t)
	cfg := &config.Config{
		Dataset:   "fixture",
		Wordlist:  filepath.Join(dir, "words.csv"),
		Tree:      filepath.Join(dir, "tree.nwk"),
		OutputDir: dir,
		Modes:     []string{"r-2"},
		Workers:   1,
	}

	require.NoError(t, RunDataset(context.Background(), discardLogger(), cfg))
	assert.FileExists(t, filepath.Join(dir, "gls", "fixture-r-2.gls"))
}

func TestLoadConfig_RejectsNoModes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: x\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_DefaultsOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: x\nmodes: [\"w-1-1\"]\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDir)
}

