// Package types defines the core types and interfaces shared by the
// file-clean pipeline: filesystem entries produced by the walker, the
// per-entry Operation produced by the classifier and rewritten by the
// planner, and the FS abstraction every stage performs I/O through.
package types
