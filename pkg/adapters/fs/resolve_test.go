package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/zkconv/pkg/adapters/fs"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))
	for _, name := range []string{"a/b/zettelkasten.txt", "a/one.csv", "a/two.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte("x"), 0o644))
	}

	t.Run("Plain Path", func(t *testing.T) {
		path := filepath.Join(dir, "a", "one.csv")
		got, err := fs.Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("Recursive Glob", func(t *testing.T) {
		got, err := fs.Resolve(filepath.Join(dir, "**", "zettel*.txt"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "a", "b", "zettelkasten.txt"), got)
	})

	t.Run("No Match", func(t *testing.T) {
		_, err := fs.Resolve(filepath.Join(dir, "**", "*.md"))
		assert.ErrorIs(t, err, fs.ErrNoMatch)
	})

	t.Run("Ambiguous", func(t *testing.T) {
		_, err := fs.Resolve(filepath.Join(dir, "a", "*.csv"))
		assert.ErrorIs(t, err, fs.ErrAmbiguousMatch)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := fs.Resolve(filepath.Join(dir, "a"))
		assert.Error(t, err)
	})
}
