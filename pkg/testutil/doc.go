// Package testutil provides utilities for testing file-clean components.
//
// Key components:
//   - NewTestFS: in-memory types.FS backed by afero.MemMapFs
//   - CreateTree: declarative tree setup from a path → content map
//   - FaultyFS: wrapper injecting per-path errors into mutations and reads
//
// Planner and executor tests should use the in-memory filesystem; only
// symlink and OS backend tests need t.TempDir().
package testutil
