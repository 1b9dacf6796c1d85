package clean

import (
	"context"
	"path/filepath"
	"time"

	"github.com/kenchou/file-clean/pkg/classifier"
	"github.com/kenchou/file-clean/pkg/config"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/executor"
	"github.com/kenchou/file-clean/pkg/filesystem"
	"github.com/kenchou/file-clean/pkg/internal/hashutil"
	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/kenchou/file-clean/pkg/patterns"
	"github.com/kenchou/file-clean/pkg/plan"
	"github.com/kenchou/file-clean/pkg/types"
	"github.com/kenchou/file-clean/pkg/walker"
)

// CleanOptions holds options for the clean command
type CleanOptions struct {
	Target string
	Config *config.Config

	// DryRun plans and reports without touching the filesystem
	DryRun bool

	// FileSystem defaults to the OS filesystem
	FileSystem types.FS

	// OnEntry is called for every walked entry (progress reporting)
	OnEntry func(types.Entry)
}

// CleanResult is the outcome of a clean run
type CleanResult struct {
	Target     string
	ConfigPath string
	DryRun     bool
	Entries    int

	// Reclaimed is the total size of the regular files planned for deletion
	Reclaimed int64

	Plan     *plan.Plan
	Report   *executor.Report
	Duration time.Duration
}

// Clean runs the pipeline: patterns -> walk -> classify -> resolve -> execute.
// A run where some operations failed returns the result together with an
// EXECUTION_FAILED error.
func Clean(ctx context.Context, opts CleanOptions) (*CleanResult, error) {
	logger := logging.GetLogger("commands.clean")
	start := time.Now()

	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Defaults(); err != nil {
			return nil, err
		}
	}
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	target, err := filepath.Abs(opts.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid target %s", opts.Target)
	}

	logger.Debug().
		Str("target", target).
		Str("config", cfg.Path).
		Bool("dryRun", opts.DryRun).
		Msg("Starting clean")

	// 1. Compile patterns; a bad pattern aborts before any filesystem access
	set, err := patterns.FromConfig(cfg.Patterns)
	if err != nil {
		return nil, err
	}

	// 2. Walk the target
	done := logging.LogOperationStart(logger, "walk")
	w := walker.New(fsys, walker.Options{SkipTmp: cfg.Options.SkipTmp, OnEntry: opts.OnEntry})
	entries, err := w.Walk(ctx, target)
	done()
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("entries", len(entries)).Msg("Target walked")

	// 3. Classify every entry
	var digester classifier.Digester
	if cfg.Options.Hash && len(set.HashGates) > 0 {
		alg, err := hashutil.ParseAlgorithm(cfg.Options.HashAlgorithm)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid hash algorithm")
		}
		digester = hashutil.New(alg, int64(cfg.Options.MaxHashSize))
	}
	c := classifier.New(set, fsys, digester, classifier.Options{
		Delete:          cfg.Options.Delete,
		Hash:            cfg.Options.Hash,
		Rename:          cfg.Options.Rename,
		RemoveEmptyDirs: cfg.Options.RemoveEmptyDirs,
	})
	done = logging.LogOperationStart(logger, "classify")
	ops, err := c.ClassifyAll(ctx, entries, cfg.Options.Workers)
	done()
	if err != nil {
		return nil, err
	}

	// 4. Resolve cascades once every classification has finished
	p := plan.New(target, entries, ops)
	p.Resolve(cfg.Options.RemoveEmptyDirs)

	// 5. Execute
	done = logging.LogOperationStart(logger, "execute")
	report := executor.New(fsys, opts.DryRun).Execute(p)
	done()

	result := &CleanResult{
		Target:     target,
		ConfigPath: cfg.Path,
		DryRun:     opts.DryRun,
		Entries:    len(entries),
		Reclaimed:  reclaimable(p),
		Plan:       p,
		Report:     report,
		Duration:   time.Since(start),
	}

	if failed := report.Failed(); failed > 0 {
		return result, errors.Newf(errors.ErrExecutionFailed, "%d operations failed", failed).
			WithDetail("failed", failed)
	}

	logger.Info().
		Str("target", target).
		Int("actions", len(p.Actions())).
		Dur("duration", result.Duration).
		Msg("Clean completed")
	return result, nil
}

func reclaimable(p *plan.Plan) int64 {
	var total int64
	for _, item := range p.Deletes() {
		if item.Entry.Kind == types.KindFile {
			total += item.Entry.Size
		}
	}
	return total
}
