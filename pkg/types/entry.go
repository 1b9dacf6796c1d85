package types

import (
	"path/filepath"
)

// EntryKind distinguishes the filesystem object behind an Entry
type EntryKind string

const (
	KindFile    EntryKind = "file"
	KindDir     EntryKind = "dir"
	KindSymlink EntryKind = "symlink"
)

// Entry is one filesystem object found under the target root
type Entry struct {
	// Path is the cleaned absolute path
	Path string

	// Name is the base name, the only part patterns are matched against
	Name string

	// Depth counts path segments below the walk root (root children are 1)
	Depth int

	Kind EntryKind

	// Size is the file size in bytes; zero for directories
	Size int64

	// LinkTarget is set for symlinks
	LinkTarget string

	// BrokenLink is true when LinkTarget does not resolve
	BrokenLink bool

	// ChildCount is the number of direct children seen by the walker.
	// Only meaningful for directories.
	ChildCount int

	// Pinned entries are reported to the planner but never classified or
	// escalated. Skipped .tmp directories and unreadable directories are
	// pinned so their parents never look empty.
	Pinned bool
}

// IsDir reports whether the entry is a real directory (not a symlink to one)
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// IsSymlink reports whether the entry is a symbolic link
func (e Entry) IsSymlink() bool {
	return e.Kind == KindSymlink
}

// Parent returns the directory containing the entry
func (e Entry) Parent() string {
	return filepath.Dir(e.Path)
}
