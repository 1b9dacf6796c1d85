package executor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/types"
)

// MaxCollisionAttempts bounds the numbered alternatives tried for one
// destination
const MaxCollisionAttempts = 999

// UniqueTarget returns path if nothing exists there, otherwise the first
// free "name(N).ext" alternative in the same directory.
func UniqueTarget(fsys types.FS, path string) (string, error) {
	return uniqueTarget(path, func(p string) bool {
		_, err := fsys.Lstat(p)
		return err == nil
	})
}

func uniqueTarget(path string, exists func(string) bool) (string, error) {
	if !exists(path) {
		return path, nil
	}

	dir, name := filepath.Split(path)
	stem, ext := splitExt(name)
	for n := 1; n <= MaxCollisionAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, n, ext))
		if !exists(candidate) {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrCollisionExhausted,
		"no free name for %s after %d attempts", path, MaxCollisionAttempts).
		WithDetail("path", path)
}

// splitExt splits name before its last extension. Dotfiles such as
// ".bashrc" have no extension.
func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == name || strings.TrimSuffix(name, ext) == "" {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}
