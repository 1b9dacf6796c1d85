package types

import "io/fs"

// FS is the filesystem seen by the walker, the hasher and the executor.
// Paths are absolute, native paths.
type FS interface {
	// Read side: walking, hashing and symlink inspection
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Readlink(name string) (string, error)
	Open(name string) (fs.File, error)
	ReadFile(name string) ([]byte, error)

	// Write side: plan execution and generated config files. Remove fails on
	// a non-empty directory, as os.Remove does.
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
