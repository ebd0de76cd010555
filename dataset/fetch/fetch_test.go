package fetch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFetchCopiesFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "localities.jsonl"), []byte("{}\n"), 0o644))

	dest := t.TempDir()
	src := NewLocalSource(root)
	path, err := src.Fetch(context.Background(), "localities.jsonl", dest)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))
}

func TestLocalSourceFetchMissingFileErrors(t *testing.T) {
	src := NewLocalSource(t.TempDir())
	_, err := src.Fetch(context.Background(), "missing.jsonl", t.TempDir())
	require.Error(t, err)
}
