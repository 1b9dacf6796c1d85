// Package plan turns per-entry classifications into a consistent mutation
// plan.
//
// A Plan is an arena of items indexed by path. Resolution runs two
// fixed-point passes over it:
//
//   - ResolveEmptyDirs marks directories with no surviving children as
//     Delete("<EMPTY_DIR>"), pass after pass, until nothing changes. The
//     parent/children adjacency is rebuilt from scratch for every pass.
//   - PropagateDeletes marks every descendant of a deleted directory as an
//     implied deletion, so no rename or merge is ever planned inside a
//     directory that is going away.
//
// After Resolve, a path marked Delete has every descendant marked Delete.
// Pinned items (skipped .tmp directories, unreadable directories) count as
// children but are never escalated.
package plan
