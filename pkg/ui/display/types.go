package display

import (
	"time"
)

// Status values for a reported item
const (
	StatusPlanned = "planned"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

// CleanReport is the display form of a clean run. Paths are relative to
// Target, slash separated.
type CleanReport struct {
	Target    string        `json:"target" yaml:"target"`
	Config    string        `json:"config,omitempty" yaml:"config,omitempty"`
	DryRun    bool          `json:"dryRun" yaml:"dry_run"`
	Entries   int           `json:"entries" yaml:"entries"`
	Items     []Item        `json:"items" yaml:"items"`
	Summary   Summary       `json:"summary" yaml:"summary"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
}

// Item is one acted-upon path
type Item struct {
	Path string `json:"path" yaml:"path"`
	Kind string `json:"kind" yaml:"kind"`

	// Operation is delete, rename or move_to_parent
	Operation string `json:"operation" yaml:"operation"`

	// Reason is the pattern (or pattern:digest) behind a deletion, or the
	// ancestor path for implied deletions
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Implied bool   `json:"implied,omitempty" yaml:"implied,omitempty"`

	NewName string `json:"newName,omitempty" yaml:"new_name,omitempty"`

	// Destination is where a rename or merged child ended up
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`

	LinkTarget string `json:"linkTarget,omitempty" yaml:"link_target,omitempty"`
	BrokenLink bool   `json:"brokenLink,omitempty" yaml:"broken_link,omitempty"`

	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// IsDir reports whether the item is a directory
func (i Item) IsDir() bool {
	return i.Kind == "dir"
}

// Summary counts items by outcome
type Summary struct {
	Deleted   int   `json:"deleted" yaml:"deleted"`
	Implied   int   `json:"implied" yaml:"implied"`
	Renamed   int   `json:"renamed" yaml:"renamed"`
	Moved     int   `json:"moved" yaml:"moved"`
	Failed    int   `json:"failed" yaml:"failed"`
	Reclaimed int64 `json:"reclaimed" yaml:"reclaimed"`
}

// Total returns the number of acted-upon paths
func (s Summary) Total() int {
	return s.Deleted + s.Implied + s.Renamed + s.Moved
}
