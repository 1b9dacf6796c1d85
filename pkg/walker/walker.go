// Package walker lists the entries below a target directory.
package walker

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/kenchou/file-clean/pkg/types"
)

// TmpDirName is the scratch directory name skipped when SkipTmp is set
const TmpDirName = ".tmp"

// Options control the walk
type Options struct {
	// SkipTmp pins .tmp directories instead of descending into them
	SkipTmp bool

	// OnEntry, when set, is called for every entry as it is found
	OnEntry func(types.Entry)
}

// Walker produces entries in pre-order, children sorted by name
type Walker struct {
	fs   types.FS
	opts Options
}

// New creates a Walker over fsys
func New(fsys types.FS, opts Options) *Walker {
	return &Walker{fs: fsys, opts: opts}
}

// Walk returns every entry below root. The root itself is not an entry.
// Symlinks are reported but never followed.
func (w *Walker) Walk(ctx context.Context, root string) ([]types.Entry, error) {
	logger := logging.GetLogger("walker")

	root = filepath.Clean(root)
	info, err := w.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", root).
			WithDetail("path", root)
	}

	children, err := w.fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", root).
			WithDetail("path", root)
	}

	var entries []types.Entry
	type frame struct {
		dir   string
		depth int
		names []string
	}
	stack := []frame{{dir: root, depth: 1, names: names(children)}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := &stack[len(stack)-1]
		if len(top.names) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		name := top.names[0]
		top.names = top.names[1:]
		dir, depth := top.dir, top.depth

		entry, ok := w.entry(filepath.Join(dir, name), name, depth)
		if !ok {
			continue
		}

		var sub []string
		if entry.IsDir() {
			if w.opts.SkipTmp && name == TmpDirName {
				entry.Pinned = true
				logger.Debug().Str("path", entry.Path).Msg("Skipping .tmp directory")
			} else if grand, err := w.fs.ReadDir(entry.Path); err != nil {
				entry.Pinned = true
				logger.Warn().Err(err).Str("path", entry.Path).Msg("Cannot read directory, leaving it untouched")
			} else {
				entry.ChildCount = len(grand)
				sub = names(grand)
			}
		}

		entries = append(entries, entry)
		if w.opts.OnEntry != nil {
			w.opts.OnEntry(entry)
		}
		if len(sub) > 0 {
			stack = append(stack, frame{dir: entry.Path, depth: depth + 1, names: sub})
		}
	}

	logger.Debug().Str("root", root).Int("entries", len(entries)).Msg("Walk complete")
	return entries, nil
}

// entry describes path; ok is false when it vanished since its parent was
// read. An entry that exists but cannot be stat'ed is returned pinned, so
// its parent never looks empty.
func (w *Walker) entry(path, name string, depth int) (types.Entry, bool) {
	logger := logging.GetLogger("walker")

	info, err := w.fs.Lstat(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("path", path).Msg("Entry vanished, skipping")
		return types.Entry{}, false
	}
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Cannot stat entry, leaving it untouched")
		return types.Entry{Path: path, Name: name, Depth: depth, Kind: types.KindFile, Pinned: true}, true
	}

	e := types.Entry{Path: path, Name: name, Depth: depth}
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		e.Kind = types.KindSymlink
		if target, err := w.fs.Readlink(path); err == nil {
			e.LinkTarget = target
		}
		if _, err := w.fs.Stat(path); err != nil {
			e.BrokenLink = true
		}
	case info.IsDir():
		e.Kind = types.KindDir
	default:
		e.Kind = types.KindFile
		e.Size = info.Size()
	}
	return e, true
}

func names(entries []fs.DirEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}
