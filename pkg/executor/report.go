package executor

import (
	"time"

	"github.com/kenchou/file-clean/pkg/types"
)

// Result is the outcome of one executed operation
type Result struct {
	Path string
	Op   types.Operation

	// Target is the final destination of a rename or move
	Target string

	Success bool

	// Skipped is set for dry runs
	Skipped bool

	Message  string
	Error    error
	Duration time.Duration
}

// Report collects the results of a run in execution order
type Report struct {
	DryRun  bool
	Results []Result
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
}

// Failures returns the failed results
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Success {
			out = append(out, res)
		}
	}
	return out
}

// Failed returns the number of failed results
func (r *Report) Failed() int {
	return len(r.Failures())
}

// Tally counts successful results by operation kind. Implied deletions are
// counted separately from the deletions that caused them.
type Tally struct {
	Deleted int `json:"deleted" yaml:"deleted"`
	Implied int `json:"implied" yaml:"implied"`
	Renamed int `json:"renamed" yaml:"renamed"`
	Moved   int `json:"moved" yaml:"moved"`
	Failed  int `json:"failed" yaml:"failed"`
}

// Tally summarizes the report
func (r *Report) Tally() Tally {
	var t Tally
	for _, res := range r.Results {
		if !res.Success {
			t.Failed++
			continue
		}
		switch res.Op.Kind {
		case types.OpDelete:
			if res.Op.Implied {
				t.Implied++
			} else {
				t.Deleted++
			}
		case types.OpRename:
			t.Renamed++
		case types.OpMoveToParent:
			t.Moved++
		}
	}
	return t
}
