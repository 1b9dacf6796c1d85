// Package executor applies a resolved plan to the filesystem.
//
// Deletions run first, deepest path first, so a directory is only removed
// after its contents. Renames and merges into the parent run afterwards,
// again deepest first, so a child is relocated before its parent's name
// changes. Destinations that already exist get a numbered alternative
// ("name(1).ext", "name(2).ext", ...).
//
// Every item is independent: a failure is recorded in the Report and the
// run continues. In dry-run mode the executor logs exactly what it would do
// without mutating anything.
package executor
