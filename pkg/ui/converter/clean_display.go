package converter

import (
	"path/filepath"
	"time"

	"github.com/kenchou/file-clean/pkg/commands/clean"
	"github.com/kenchou/file-clean/pkg/executor"
	"github.com/kenchou/file-clean/pkg/types"
	"github.com/kenchou/file-clean/pkg/ui/display"
)

// ConvertToDisplay transforms a clean result into a CleanReport suitable
// for rendering
func ConvertToDisplay(result *clean.CleanResult) *display.CleanReport {
	report := &display.CleanReport{
		Target:    result.Target,
		Config:    result.ConfigPath,
		DryRun:    result.DryRun,
		Entries:   result.Entries,
		Items:     []display.Item{},
		Duration:  result.Duration,
		Timestamp: time.Now(),
	}

	outcomes := make(map[string]executor.Result)
	if result.Report != nil {
		for _, res := range result.Report.Results {
			outcomes[res.Path] = res
		}
		report.Summary.Failed = result.Report.Failed()
	}

	for _, item := range result.Plan.Actions() {
		di := display.Item{
			Path:       relative(result.Target, item.Entry.Path),
			Kind:       string(item.Entry.Kind),
			Operation:  string(item.Op.Kind),
			Implied:    item.Op.Implied,
			NewName:    item.Op.NewName,
			LinkTarget: item.Entry.LinkTarget,
			BrokenLink: item.Entry.BrokenLink,
			Status:     display.StatusPlanned,
		}
		if item.Op.IsDelete() {
			di.Reason = item.Op.Reason
			if item.Op.Implied {
				di.Reason = relative(result.Target, item.Op.Reason)
			}
		}

		if res, ok := outcomes[item.Entry.Path]; ok {
			if res.Target != "" && item.Op.Kind == types.OpRename {
				di.Destination = relative(result.Target, res.Target)
			}
			switch {
			case !res.Success:
				di.Status = display.StatusFailed
				if res.Error != nil {
					di.Error = res.Error.Error()
				}
			case !res.Skipped:
				di.Status = display.StatusDone
			}
		}

		if di.Status != display.StatusFailed {
			count(&report.Summary, item.Op)
		}
		report.Items = append(report.Items, di)
	}

	report.Summary.Reclaimed = result.Reclaimed
	return report
}

func count(s *display.Summary, op types.Operation) {
	switch op.Kind {
	case types.OpDelete:
		if op.Implied {
			s.Implied++
		} else {
			s.Deleted++
		}
	case types.OpRename:
		s.Renamed++
	case types.OpMoveToParent:
		s.Moved++
	}
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
