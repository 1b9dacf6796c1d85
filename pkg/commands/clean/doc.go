// Package clean implements the clean command, which ties pattern
// compilation, the directory walk, classification, plan resolution and
// execution together.
package clean
