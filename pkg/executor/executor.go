package executor

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/filesystem"
	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/kenchou/file-clean/pkg/plan"
	"github.com/kenchou/file-clean/pkg/types"
	"github.com/rs/zerolog"
)

// Executor applies plans to a filesystem
type Executor struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger

	// claimed and removed track this run's effects so collision checks
	// stay accurate when nothing is actually written (dry run).
	claimed map[string]bool
	removed map[string]bool
}

// New creates an executor. A nil fsys means the OS filesystem.
func New(fsys types.FS, dryRun bool) *Executor {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Executor{
		fs:     fsys,
		dryRun: dryRun,
		logger: logging.GetLogger("executor"),
	}
}

// Execute runs every deletion, then every rename and merge, and reports the
// outcome of each. It never stops early.
func (e *Executor) Execute(p *plan.Plan) *Report {
	e.claimed = make(map[string]bool)
	e.removed = make(map[string]bool)

	report := &Report{DryRun: e.dryRun}
	start := time.Now()

	deletes := p.Deletes()
	relocations := p.Relocations()
	e.logger.Debug().
		Int("deletes", len(deletes)).
		Int("relocations", len(relocations)).
		Bool("dry_run", e.dryRun).
		Msg("Executing plan")

	// Implied deletions are settled after every explicit one has run, since
	// their outcome depends on the ancestor they were removed with.
	results := make([]Result, len(deletes))
	var implied []int
	for i, item := range deletes {
		if item.Op.Implied {
			implied = append(implied, i)
			continue
		}
		results[i] = e.delete(item)
	}
	for _, i := range implied {
		results[i] = e.settleImplied(deletes[i])
	}
	for _, res := range results {
		report.add(res)
	}
	for _, item := range relocations {
		switch item.Op.Kind {
		case types.OpRename:
			report.add(e.rename(item))
		case types.OpMoveToParent:
			for _, res := range e.moveToParent(item) {
				report.add(res)
			}
		}
	}

	e.logger.Info().
		Int("results", len(report.Results)).
		Int("failed", report.Failed()).
		Bool("dry_run", e.dryRun).
		Dur("duration", time.Since(start)).
		Msg("Plan executed")
	return report
}

func (e *Executor) delete(item *plan.Item) Result {
	start := time.Now()
	path := item.Entry.Path
	res := Result{Path: path, Op: item.Op, Skipped: e.dryRun}

	e.logger.Info().
		Str("path", path).
		Str("reason", item.Op.Reason).
		Bool("dry_run", e.dryRun).
		Msg("Deleting")

	if !e.dryRun {
		if err := e.remove(path); err != nil {
			e.logger.Error().Err(err).Str("path", path).Msg("Delete failed")
			res.Error = errors.Wrapf(err, errors.ErrDeleteFailed, "failed to delete %s", path).
				WithDetail("path", path)
			res.Duration = time.Since(start)
			return res
		}
	}

	e.removed[path] = true
	res.Success = true
	res.Message = "deleted (" + item.Op.Reason + ")"
	res.Duration = time.Since(start)
	return res
}

// settleImplied reports an entry removed together with its ancestor. It
// succeeds only when that ancestor was removed.
func (e *Executor) settleImplied(item *plan.Item) Result {
	path, ancestor := item.Entry.Path, item.Op.Reason
	res := Result{Path: path, Op: item.Op, Skipped: e.dryRun}

	if !e.removed[ancestor] {
		e.logger.Warn().Str("path", path).Str("ancestor", ancestor).Msg("Ancestor was kept, entry not removed")
		res.Error = errors.Newf(errors.ErrDeleteFailed, "%s was not removed: %s could not be deleted", path, ancestor).
			WithDetail("path", path).
			WithDetail("ancestor", ancestor)
		return res
	}

	e.removed[path] = true
	e.logger.Debug().
		Str("path", path).
		Str("ancestor", ancestor).
		Bool("dry_run", e.dryRun).
		Msg("Removed with ancestor")
	res.Success = true
	res.Message = "removed with " + ancestor
	return res
}

// remove deletes path as a file first and falls back to a recursive delete.
// A path that is already gone counts as removed.
func (e *Executor) remove(path string) error {
	err := e.fs.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	e.logger.Trace().Err(err).Str("path", path).Msg("Plain remove failed, removing recursively")

	if err := e.fs.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (e *Executor) rename(item *plan.Item) Result {
	start := time.Now()
	src := item.Entry.Path
	res := Result{Path: src, Op: item.Op, Skipped: e.dryRun}

	dst, err := e.relocate(src, filepath.Join(filepath.Dir(src), item.Op.NewName))
	res.Target = dst
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
		return res
	}
	res.Success = true
	res.Message = "renamed to " + filepath.Base(dst)
	return res
}

// moveToParent relocates every current child of the item's directory into
// its parent and then removes the directory. It returns one result per
// child followed by the result for the directory itself.
func (e *Executor) moveToParent(item *plan.Item) []Result {
	start := time.Now()
	dir := item.Entry.Path
	parent := filepath.Dir(dir)
	res := Result{Path: dir, Op: item.Op, Target: parent, Skipped: e.dryRun}

	e.logger.Info().
		Str("path", dir).
		Bool("dry_run", e.dryRun).
		Msg("Moving contents to parent")

	children, err := e.children(dir)
	if err != nil {
		e.logger.Error().Err(err).Str("path", dir).Msg("Cannot list directory")
		res.Error = errors.Wrapf(err, errors.ErrMoveFailed, "failed to read %s", dir).
			WithDetail("path", dir)
		res.Duration = time.Since(start)
		return []Result{res}
	}

	var results []Result
	failed := 0
	for _, name := range children {
		childStart := time.Now()
		src := filepath.Join(dir, name)
		childRes := Result{Path: src, Op: item.Op, Skipped: e.dryRun}

		dst, err := e.relocate(src, filepath.Join(parent, name))
		childRes.Target = dst
		childRes.Duration = time.Since(childStart)
		if err != nil {
			failed++
			childRes.Error = err
		} else {
			childRes.Success = true
			childRes.Message = "moved to " + dst
		}
		results = append(results, childRes)
	}

	res.Duration = time.Since(start)
	if failed > 0 {
		e.logger.Warn().Str("path", dir).Int("failed", failed).Msg("Directory kept, some children could not be moved")
		res.Error = errors.Newf(errors.ErrMoveFailed, "%d entries of %s could not be moved", failed, dir).
			WithDetail("path", dir).
			WithDetail("failed", failed)
		return append(results, res)
	}

	e.removed[dir] = true
	if !e.dryRun {
		if err := e.fs.Remove(dir); err != nil && !os.IsNotExist(err) {
			e.logger.Error().Err(err).Str("path", dir).Msg("Cannot remove merged directory")
			res.Error = errors.Wrapf(err, errors.ErrMoveFailed, "failed to remove %s", dir).
				WithDetail("path", dir)
			return append(results, res)
		}
	}

	res.Success = true
	res.Message = "merged into " + parent
	return append(results, res)
}

// relocate renames src to want, or to a numbered alternative when want is
// taken, and returns the destination used.
func (e *Executor) relocate(src, want string) (string, error) {
	dst, err := uniqueTarget(want, e.exists)
	if err != nil {
		e.logger.Error().Err(err).Str("path", src).Str("target", want).Msg("Giving up on rename")
		return "", err
	}

	e.logger.Info().
		Str("path", src).
		Str("target", dst).
		Bool("dry_run", e.dryRun).
		Msg("Renaming")

	if !e.dryRun {
		if err := e.fs.Rename(src, dst); err != nil {
			e.logger.Error().Err(err).Str("path", src).Str("target", dst).Msg("Rename failed")
			return dst, errors.Wrapf(err, errors.ErrRenameFailed, "failed to rename %s", src).
				WithDetail("path", src).
				WithDetail("target", dst)
		}
	}

	delete(e.claimed, src)
	e.removed[src] = true
	e.claimed[dst] = true
	delete(e.removed, dst)
	return dst, nil
}

// children lists the names in dir as this run has left it, which differs
// from the disk in a dry run.
func (e *Executor) children(dir string) ([]string, error) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	var names []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if e.removed[path] {
			continue
		}
		seen[path] = true
		names = append(names, entry.Name())
	}
	for path := range e.claimed {
		if filepath.Dir(path) == dir && !seen[path] {
			names = append(names, filepath.Base(path))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (e *Executor) exists(path string) bool {
	if e.claimed[path] {
		return true
	}
	if e.removed[path] {
		return false
	}
	_, err := e.fs.Lstat(path)
	return err == nil
}
