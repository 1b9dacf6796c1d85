// Package filesystem provides filesystem implementations for file-clean.
//
// This package contains implementations of the types.FS interface: the
// real OS filesystem used by the CLI and an afero-backed filesystem used by
// tests. The afero backend follows OS semantics where the planner and
// executor depend on them: removing a non-empty directory fails and renaming
// a directory carries its subtree along.
package filesystem
