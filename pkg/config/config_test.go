package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolateHome points HOME and XDG_CONFIG_HOME at empty directories so
// discovery cannot pick up the developer's own files.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestDefaults(t *testing.T) {
	cfg, err := Defaults()
	require.NoError(t, err)

	assert.Empty(t, cfg.Remove)
	assert.Empty(t, cfg.Cleanup)
	assert.True(t, cfg.Options.Delete)
	assert.True(t, cfg.Options.Hash)
	assert.True(t, cfg.Options.Rename)
	assert.True(t, cfg.Options.RemoveEmptyDirs)
	assert.True(t, cfg.Options.SkipTmp)
	assert.Equal(t, "md5", cfg.Options.HashAlgorithm)
	assert.Equal(t, ByteSize(0), cfg.Options.MaxHashSize)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "patterns.yml"), `
remove:
  - "*.tmp"
  - /^\d+$
remove_hash:
  "*.jpg":
    - ABCDEF
    - "123456"
cleanup: |
  /\[www\.[^\]]+\]

  -copy
options:
  rename: false
  max_hash_size: 10 MiB
  workers: 4
`)

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, []string{"*.tmp", `/^\d+$`}, cfg.Remove)
	assert.Equal(t, map[string][]string{"*.jpg": {"ABCDEF", "123456"}}, cfg.RemoveHash)
	assert.Equal(t, []string{`/\[www\.[^\]]+\]`, "-copy"}, cfg.Cleanup)
	assert.False(t, cfg.Options.Rename)
	assert.True(t, cfg.Options.Delete, "unset options keep their defaults")
	assert.Equal(t, ByteSize(10*1024*1024), cfg.Options.MaxHashSize)
	assert.Equal(t, 4, cfg.Options.Workers)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, ".cleanup-patterns.toml"), `
remove = ["*.bak", "desktop.ini"]
cleanup = """
-copy
"""

[remove_hash]
"*.url" = ["d41d8cd98f00b204e9800998ecf8427e"]

[options]
hash_algorithm = "sha256"
`)

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"*.bak", "desktop.ini"}, cfg.Remove)
	assert.Equal(t, []string{"-copy"}, cfg.Cleanup)
	assert.Equal(t, []string{"d41d8cd98f00b204e9800998ecf8427e"}, cfg.RemoveHash["*.url"])
	assert.Equal(t, "sha256", cfg.Options.HashAlgorithm)
}

func TestLoadMissingKeysAreEmpty(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "p.yml"), "remove: ['*.tmp']\n")

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp"}, cfg.Remove)
	assert.Empty(t, cfg.RemoveHash)
	assert.Empty(t, cfg.Cleanup)
}

func TestLoadLayering(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "p.yml"), `
options:
  workers: 2
  delete: true
  skip_tmp: true
`)
	t.Setenv("FILECLEAN_OPTIONS_WORKERS", "8")
	t.Setenv("FILECLEAN_OPTIONS_SKIP_TMP", "false")

	cfg, err := Load(LoadOptions{
		File:      path,
		Overrides: map[string]interface{}{"options.delete": false},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Options.Workers, "environment beats file")
	assert.False(t, cfg.Options.SkipTmp, "option names keep their underscores")
	assert.False(t, cfg.Options.Delete, "overrides beat everything")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unparseable file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "bad.yml"), "remove: [unclosed\n")
		_, err := Load(LoadOptions{File: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(LoadOptions{File: filepath.Join(dir, "nope.yml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
	})

	t.Run("invalid algorithm", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "alg.yml"), "options:\n  hash_algorithm: crc\n")
		_, err := Load(LoadOptions{File: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("negative workers", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "workers.yml"), "options:\n  workers: -1\n")
		_, err := Load(LoadOptions{File: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("bad size", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "size.yml"), "options:\n  max_hash_size: lots\n")
		_, err := Load(LoadOptions{File: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestDiscover(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	target := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(target, 0755))

	t.Run("not found", func(t *testing.T) {
		_, err := Discover(target)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
	})

	t.Run("nearest ancestor wins", func(t *testing.T) {
		writeFile(t, filepath.Join(root, "a", ".cleanup-patterns.yml"), "remove: []\n")
		nearer := writeFile(t, filepath.Join(root, "a", "b", ".cleanup-patterns.toml"), "remove = []\n")

		got, err := Discover(target)
		require.NoError(t, err)
		assert.Equal(t, nearer, got)
	})

	t.Run("load uses discovery", func(t *testing.T) {
		cfg, err := Load(LoadOptions{Target: target})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "a", "b", ".cleanup-patterns.toml"), cfg.Path)
	})
}

func TestDiscoverFallsBackToXDGThenHome(t *testing.T) {
	isolateHome(t)
	target := t.TempDir()

	home := writeFile(t, filepath.Join(xdg.Home, ".cleanup-patterns.yml"), "remove: []\n")
	got, err := Discover(target)
	require.NoError(t, err)
	assert.Equal(t, home, got)

	inXDG := writeFile(t, filepath.Join(xdg.ConfigHome, "file-clean", ".cleanup-patterns.yaml"), "remove: []\n")
	got, err = Discover(target)
	require.NoError(t, err)
	assert.Equal(t, inXDG, got)
}

func TestSearchDirsOrder(t *testing.T) {
	isolateHome(t)
	dirs := SearchDirs("/srv/data")

	require.GreaterOrEqual(t, len(dirs), 5)
	assert.Equal(t, []string{"/srv/data", "/srv", "/"}, dirs[:3])
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "file-clean"), dirs[3])
	assert.Equal(t, xdg.Home, dirs[4])
}

func TestGenerateConfigContent(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			content, err := GenerateConfigContent(format)
			require.NoError(t, err)

			path := writeFile(t, filepath.Join(t.TempDir(), "gen."+format), string(content))
			cfg, err := Load(LoadOptions{File: path})
			require.NoError(t, err)

			assert.Contains(t, cfg.Remove, ".DS_Store")
			assert.Contains(t, cfg.RemoveHash, "*.url")
			assert.NotEmpty(t, cfg.Cleanup)
			assert.Equal(t, ByteSize(512*1024*1024), cfg.Options.MaxHashSize)
		})
	}

	_, err := GenerateConfigContent("ini")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMarshalRoundTripsSize(t *testing.T) {
	cfg, err := Defaults()
	require.NoError(t, err)
	cfg.Options.MaxHashSize = ByteSize(2048)

	out, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "max_hash_size: 2.0 KiB")
	assert.NotContains(t, string(out), "path")
}
