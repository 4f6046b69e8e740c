package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteTree creates every file in files under root. Keys are slash-separated
// paths relative to root; parent directories are created as needed.
func WriteTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
}

// WriteFile writes a single file, creating its parent directory
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadTree returns every file under root as a relative-path -> content map
func ReadTree(t *testing.T, fsys types.FS, root string) map[string]string {
	t.Helper()
	rel, err := filesystem.RelativeFiles(fsys, root)
	require.NoError(t, err)

	tree := make(map[string]string, len(rel))
	for _, r := range rel {
		data, err := fsys.ReadFile(filepath.Join(root, filepath.FromSlash(r)))
		require.NoError(t, err)
		tree[r] = string(data)
	}
	return tree
}

// TreePaths returns the sorted relative paths of every file under root
func TreePaths(t *testing.T, fsys types.FS, root string) []string {
	t.Helper()
	rel, err := filesystem.RelativeFiles(fsys, root)
	require.NoError(t, err)
	sort.Strings(rel)
	return rel
}

// ReadString reads a file and fails the test if it cannot
func ReadString(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
