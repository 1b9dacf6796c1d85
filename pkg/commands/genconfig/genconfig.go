package genconfig

import (
	"path/filepath"

	"github.com/kenchou/file-clean/pkg/config"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/filesystem"
	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/kenchou/file-clean/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Format is "yaml" (default) or "toml"
	Format string

	// Output is the file to write; empty means content only
	Output string

	// Force overwrites an existing Output
	Force bool

	FileSystem types.FS
}

// GenConfigResult holds the generated content and any file written
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig renders the starter patterns file and optionally writes it
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content, err := config.GenerateConfigContent(opts.Format)
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		ConfigContent: string(content),
		FilesWritten:  []string{},
	}

	if opts.Output == "" {
		logger.Debug().Str("format", opts.Format).Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if _, err := fsys.Stat(opts.Output); err == nil && !opts.Force {
		return result, errors.Newf(errors.ErrInvalidInput, "%s already exists, use --force to overwrite", opts.Output).
			WithDetail("path", opts.Output)
	}

	if err := fsys.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory for %s", opts.Output)
	}
	if err := fsys.WriteFile(opts.Output, content, 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "failed to write config to %s", opts.Output)
	}

	logger.Info().Str("path", opts.Output).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, opts.Output)
	return result, nil
}
