package testutil

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/kenchou/file-clean/pkg/filesystem"
	"github.com/kenchou/file-clean/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// Tree maps slash-separated paths relative to a root to file contents.
// A key ending in "/" creates an (empty) directory.
type Tree map[string]string

// CreateTree materializes tree under root.
func CreateTree(t *testing.T, fsys types.FS, root string, tree Tree) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	for rel, content := range tree {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fsys.MkdirAll(p, 0755), "mkdir %s", rel)
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0755), "mkdir parent of %s", rel)
		require.NoError(t, fsys.WriteFile(p, []byte(content), 0644), "write %s", rel)
	}
}

// ListTree returns every path below root, relative and slash-separated,
// with directories suffixed by "/". The result is sorted.
func ListTree(t *testing.T, fsys types.FS, root string) []string {
	t.Helper()
	var out []string
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			p := filepath.Join(dir, e.Name())
			rel, err := filepath.Rel(root, p)
			require.NoError(t, err)
			rel = filepath.ToSlash(rel)
			if e.IsDir() {
				out = append(out, rel+"/")
				walk(p)
				continue
			}
			out = append(out, rel)
		}
	}
	walk(root)
	sort.Strings(out)
	return out
}

// Exists reports whether path exists on fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}
