package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geodex.yaml")
	contents := `
country_path: testdata/country.csv
score_workers: 4
skip_kinds: ["locality"]
refresh_cron: "0 0 * * *"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/country.csv", d.CountryPath)
	assert.Equal(t, 4, d.ScoreWorkers)
	assert.True(t, d.SkipsKind("locality"))
	assert.False(t, d.SkipsKind("country"))
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/geodex.yaml")
	require.Error(t, err)
}
