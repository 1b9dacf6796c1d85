package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/kenchou/file-clean/pkg/types"
)

// FaultyFS wraps a types.FS and returns injected errors for chosen paths.
// Calls are recorded so tests can assert which mutations were attempted.
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	faults map[string]map[string]error
	calls  []string
}

// NewFaultyFS wraps base with no faults configured.
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base, faults: make(map[string]map[string]error)}
}

// Fail makes op ("Lstat", "Open", "ReadDir", "Remove", "RemoveAll", "Rename") on path
// return err. For Rename the path is the source.
func (f *FaultyFS) Fail(op, path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][filepath.Clean(path)] = err
	return f
}

// Calls returns the recorded mutation calls as "Op path" strings.
func (f *FaultyFS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FaultyFS) check(op, path string, record bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if record {
		f.calls = append(f.calls, op+" "+path)
	}
	return f.faults[op][filepath.Clean(path)]
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check("Lstat", name, false); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) Open(name string) (fs.File, error) {
	if err := f.check("Open", name, false); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("ReadDir", name, false); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check("Remove", name, true); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.check("RemoveAll", path, true); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if err := f.check("Rename", oldpath, true); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}
