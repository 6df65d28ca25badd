package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestDiscoverMatchesIncludeAndSkipsExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "de", "verbs.csv"), "liegen,gelegen\n")
	writeFile(t, filepath.Join(root, "de", "draft.csv"), "a,b\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "ignore me\n")

	paths, err := Discover(root, []string{"**/*.csv"}, []string{"**/draft.csv"})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(root, "de", "verbs.csv"), paths[0])
}

func TestDiscoverReturnsEmptyForNoMatches(t *testing.T) {
	root := t.TempDir()
	paths, err := Discover(root, []string{"**/*.csv"}, nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}
