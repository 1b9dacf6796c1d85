// Package display holds the renderer-neutral form of a clean run: a flat
// list of acted-upon items plus the tree and labels built from it.
package display
