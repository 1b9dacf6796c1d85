// Package commands provides the command implementations behind the CLI.
//
// Each command is implemented in its own subdirectory:
//   - clean/     - the cleaning pipeline (walk, classify, resolve, execute)
//   - genconfig/ - starter patterns file generation
//
// This file re-exports the command functions so the CLI depends on a single
// package.
package commands

import (
	"context"

	"github.com/kenchou/file-clean/pkg/commands/clean"
	"github.com/kenchou/file-clean/pkg/commands/genconfig"
)

// Clean runs the cleaning pipeline against a target directory.
type CleanOptions = clean.CleanOptions
type CleanResult = clean.CleanResult

func Clean(ctx context.Context, opts CleanOptions) (*CleanResult, error) {
	return clean.Clean(ctx, opts)
}

// GenConfig renders (and optionally writes) a starter patterns file.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
