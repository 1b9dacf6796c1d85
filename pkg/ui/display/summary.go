package display

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// SummaryLine describes the counts in s as one sentence, e.g.
// "2 deleted, 1 renamed (4.0 KiB)".
func SummaryLine(s Summary) string {
	var parts []string
	add := func(n int, what string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, what))
		}
	}
	add(s.Deleted, "deleted")
	add(s.Implied, "removed with parent")
	add(s.Renamed, "renamed")
	add(s.Moved, "merged into parent")
	add(s.Failed, "failed")

	if len(parts) == 0 {
		return "nothing to do"
	}
	line := strings.Join(parts, ", ")
	if s.Reclaimed > 0 {
		line += " (" + humanize.IBytes(uint64(s.Reclaimed)) + ")"
	}
	return line
}

// DryRunHint is shown after a preview
const DryRunHint = "Preview only, nothing was changed. Run with --prune to apply."
