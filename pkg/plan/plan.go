package plan

import (
	"path/filepath"
	"sort"

	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/kenchou/file-clean/pkg/types"
)

// Item is one entry with its current operation
type Item struct {
	Entry types.Entry
	Op    types.Operation

	// Proposed is the classifier's original operation
	Proposed types.Operation
}

// Plan holds every walked entry below Root
type Plan struct {
	Root   string
	items  []*Item
	byPath map[string]*Item
}

// New builds a plan; ops[i] is the operation for entries[i]. Missing
// operations default to None.
func New(root string, entries []types.Entry, ops []types.Operation) *Plan {
	p := &Plan{
		Root:   filepath.Clean(root),
		items:  make([]*Item, 0, len(entries)),
		byPath: make(map[string]*Item, len(entries)),
	}
	for i, e := range entries {
		op := types.None()
		if i < len(ops) && !ops[i].IsNone() {
			op = ops[i]
		}
		item := &Item{Entry: e, Op: op, Proposed: op}
		p.items = append(p.items, item)
		p.byPath[e.Path] = item
	}
	return p
}

// Len returns the number of items
func (p *Plan) Len() int {
	return len(p.items)
}

// Items returns all items in walk order
func (p *Plan) Items() []*Item {
	return p.items
}

// Get returns the item for path
func (p *Plan) Get(path string) (*Item, bool) {
	item, ok := p.byPath[filepath.Clean(path)]
	return item, ok
}

// Resolve runs the empty-directory cascade (when pruneEmpty is set) and then
// deletion propagation.
func (p *Plan) Resolve(pruneEmpty bool) {
	logger := logging.GetLogger("plan")
	escalated := 0
	if pruneEmpty {
		escalated = p.ResolveEmptyDirs()
	}
	implied := p.PropagateDeletes()
	logger.Debug().
		Int("items", len(p.items)).
		Int("empty_dirs", escalated).
		Int("implied", implied).
		Msg("Plan resolved")
}

// ResolveEmptyDirs marks directories left without surviving children for
// deletion until a fixed point is reached. It returns the number of
// directories escalated.
func (p *Plan) ResolveEmptyDirs() int {
	logger := logging.GetLogger("plan")
	total := 0

	for pass := 1; ; pass++ {
		remaining := p.survivingChildren()

		var marked []*Item
		for _, item := range p.items {
			if !item.Entry.IsDir() || item.Entry.Pinned || item.Op.IsDelete() {
				continue
			}
			if remaining[item.Entry.Path] == 0 {
				marked = append(marked, item)
			}
		}
		if len(marked) == 0 {
			return total
		}

		for _, item := range marked {
			logger.Trace().Str("path", item.Entry.Path).Int("pass", pass).Msg("Directory became empty")
			item.Op = types.Delete(types.ReasonEmptyDir)
		}
		total += len(marked)
		logger.Debug().Int("pass", pass).Int("marked", len(marked)).Msg("Empty directory pass")
	}
}

// survivingChildren counts, for every directory path, the children not
// marked for deletion.
func (p *Plan) survivingChildren() map[string]int {
	counts := make(map[string]int, len(p.items))
	for _, item := range p.items {
		if item.Op.IsDelete() {
			continue
		}
		counts[item.Entry.Parent()]++
	}
	return counts
}

// PropagateDeletes turns every non-deleted descendant of a deleted item into
// an implied deletion. It returns the number of items changed.
func (p *Plan) PropagateDeletes() int {
	ordered := make([]*Item, len(p.items))
	copy(ordered, p.items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Entry.Depth < ordered[j].Entry.Depth
	})

	changed := 0
	for _, item := range ordered {
		if item.Op.IsDelete() {
			continue
		}
		if cause, ok := p.deletedAncestor(item.Entry.Path); ok {
			item.Op = types.ImpliedDelete(cause)
			changed++
		}
	}
	return changed
}

// deletedAncestor returns the path whose deletion removes path, following
// implied deletions back to their cause.
func (p *Plan) deletedAncestor(path string) (string, bool) {
	for dir := filepath.Dir(path); dir != p.Root && dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
		anc, ok := p.byPath[dir]
		if !ok || !anc.Op.IsDelete() {
			continue
		}
		if anc.Op.Implied {
			return anc.Op.Reason, true
		}
		return dir, true
	}
	return "", false
}

// Actions returns the items with an operation, in walk order
func (p *Plan) Actions() []*Item {
	var out []*Item
	for _, item := range p.items {
		if !item.Op.IsNone() {
			out = append(out, item)
		}
	}
	return out
}

// Empty reports whether the plan changes nothing
func (p *Plan) Empty() bool {
	for _, item := range p.items {
		if !item.Op.IsNone() {
			return false
		}
	}
	return true
}

// Deletes returns deletions deepest first, ties broken by path
func (p *Plan) Deletes() []*Item {
	return p.collect(func(op types.Operation) bool { return op.IsDelete() })
}

// Relocations returns renames and merges deepest first, ties broken by path
func (p *Plan) Relocations() []*Item {
	return p.collect(func(op types.Operation) bool {
		return op.Kind == types.OpRename || op.Kind == types.OpMoveToParent
	})
}

func (p *Plan) collect(keep func(types.Operation) bool) []*Item {
	var out []*Item
	for _, item := range p.items {
		if keep(item.Op) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Entry.Depth != out[j].Entry.Depth {
			return out[i].Entry.Depth > out[j].Entry.Depth
		}
		return out[i].Entry.Path < out[j].Entry.Path
	})
	return out
}

// Counts summarizes the plan by operation
type Counts struct {
	Delete       int `json:"delete" yaml:"delete"`
	Implied      int `json:"implied" yaml:"implied"`
	Rename       int `json:"rename" yaml:"rename"`
	MoveToParent int `json:"move_to_parent" yaml:"move_to_parent"`
}

// Counts tallies the current operations
func (p *Plan) Counts() Counts {
	var c Counts
	for _, item := range p.items {
		switch item.Op.Kind {
		case types.OpDelete:
			if item.Op.Implied {
				c.Implied++
			} else {
				c.Delete++
			}
		case types.OpRename:
			c.Rename++
		case types.OpMoveToParent:
			c.MoveToParent++
		}
	}
	return c
}
