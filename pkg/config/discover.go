package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/kenchou/file-clean/pkg/errors"
)

// DefaultFileNames are tried in order in every search directory
var DefaultFileNames = []string{
	".cleanup-patterns.yml",
	".cleanup-patterns.yaml",
	".cleanup-patterns.toml",
}

// SearchDirs lists the directories Discover looks in, nearest first: target
// and each of its ancestors, the XDG config directory, the home directory.
func SearchDirs(target string) []string {
	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		if dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	if abs, err := filepath.Abs(target); err == nil {
		for dir := abs; ; dir = filepath.Dir(dir) {
			add(dir)
			if parent := filepath.Dir(dir); parent == dir {
				break
			}
		}
	}
	add(filepath.Join(xdg.ConfigHome, "file-clean"))
	add(xdg.Home)
	return dirs
}

// Discover returns the first patterns file found in SearchDirs(target).
func Discover(target string) (string, error) {
	dirs := SearchDirs(target)
	for _, dir := range dirs {
		for _, name := range DefaultFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path, nil
			}
		}
	}
	return "", errors.Newf(errors.ErrConfigNotFound, "no patterns file found for %s", target).
		WithDetail("searched", dirs).
		WithDetail("names", DefaultFileNames)
}
