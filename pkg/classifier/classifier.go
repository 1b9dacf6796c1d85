package classifier

import (
	"context"
	"runtime"

	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/kenchou/file-clean/pkg/patterns"
	"github.com/kenchou/file-clean/pkg/types"
	"golang.org/x/sync/errgroup"
)

// Options enable the individual rules
type Options struct {
	Delete          bool
	Hash            bool
	Rename          bool
	RemoveEmptyDirs bool
}

// Digester computes the content digest of a file
type Digester interface {
	FileDigest(fsys types.FS, path string) (string, error)
}

// Classifier applies a pattern set to entries
type Classifier struct {
	set      *patterns.Set
	fs       types.FS
	digester Digester
	opts     Options
}

// New creates a Classifier. digester may be nil when hashing is disabled.
func New(set *patterns.Set, fsys types.FS, digester Digester, opts Options) *Classifier {
	return &Classifier{set: set, fs: fsys, digester: digester, opts: opts}
}

// Classify returns the operation proposed for e.
func (c *Classifier) Classify(e types.Entry) types.Operation {
	logger := logging.GetLogger("classifier")

	if e.Pinned {
		return types.None()
	}

	if c.opts.Delete {
		if m, ok := c.set.Delete.FirstMatch(e.Name); ok {
			logger.Trace().Str("path", e.Path).Str("pattern", m.Source).Msg("Matched remove pattern")
			return types.Delete(m.Expr)
		}

		if c.opts.Hash && e.Kind == types.KindFile && c.digester != nil {
			if reason, ok := c.set.HashGates.Match(e.Name, c.digestOf(e)); ok {
				logger.Trace().Str("path", e.Path).Str("reason", reason).Msg("Matched remove_hash pattern")
				return types.Delete(reason)
			}
		}
	}

	if c.opts.Rename && len(c.set.Cleanup) > 0 {
		cleaned := c.set.Cleanup.Apply(e.Name)
		switch {
		case cleaned == e.Name:
		case cleaned == "." || cleaned == "..":
			logger.Warn().Str("path", e.Path).Str("cleaned", cleaned).Msg("Cleaned name is not usable, keeping original")
		case cleaned == "" && e.IsDir():
			logger.Trace().Str("path", e.Path).Msg("Directory name cleaned away, merging into parent")
			return types.MoveToParent()
		case cleaned == "":
			logger.Trace().Str("path", e.Path).Msg("Name cleaned away, deleting")
			return types.Delete(types.ReasonEmptyName)
		default:
			logger.Trace().Str("path", e.Path).Str("new_name", cleaned).Msg("Matched cleanup patterns")
			return types.Rename(cleaned)
		}
	}

	if c.opts.RemoveEmptyDirs && e.IsDir() && e.ChildCount == 0 {
		return types.Delete(types.ReasonEmptyDir)
	}

	return types.None()
}

// digestOf returns a lazy digest accessor for e. Failures are logged and
// reported as no digest.
func (c *Classifier) digestOf(e types.Entry) patterns.DigestFunc {
	return func() (string, bool) {
		logger := logging.GetLogger("classifier")
		sum, err := c.digester.FileDigest(c.fs, e.Path)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrHashSkipped) {
				logger.Debug().Err(err).Str("path", e.Path).Msg("Digest skipped")
			} else {
				logger.Warn().Err(err).Str("path", e.Path).Msg("Digest failed, treating as no match")
			}
			return "", false
		}
		return sum, true
	}
}

// ClassifyAll classifies entries on up to workers goroutines (all CPUs when
// workers is not positive). ops[i] belongs to entries[i].
func (c *Classifier) ClassifyAll(ctx context.Context, entries []types.Entry, workers int) ([]types.Operation, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ops := make([]types.Operation, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range entries {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ops[i] = c.Classify(entries[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ops, nil
}
