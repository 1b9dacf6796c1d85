package plan_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kenchou/file-clean/pkg/plan"
	"github.com/kenchou/file-clean/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/r"

// node describes one entry: a trailing slash marks a directory.
type node struct {
	path string
	op   types.Operation
}

func build(nodes ...node) *plan.Plan {
	var entries []types.Entry
	var ops []types.Operation
	for _, s := range nodes {
		p := strings.TrimSuffix(s.path, "/")
		full := filepath.Join(root, p)
		kind := types.KindFile
		if strings.HasSuffix(s.path, "/") {
			kind = types.KindDir
		}
		entries = append(entries, types.Entry{
			Path:  full,
			Name:  filepath.Base(full),
			Depth: strings.Count(p, "/") + 1,
			Kind:  kind,
		})
		ops = append(ops, s.op)
	}
	return plan.New(root, entries, ops)
}

func opOf(t *testing.T, p *plan.Plan, rel string) types.Operation {
	t.Helper()
	item, ok := p.Get(filepath.Join(root, rel))
	require.True(t, ok, "no item for %s", rel)
	return item.Op
}

func TestEmptyDirCascade(t *testing.T) {
	t.Run("chain collapses up to the first directory with other children", func(t *testing.T) {
		p := build(
			node{"a/", types.None()},
			node{"a/keep.txt", types.None()},
			node{"a/b/", types.None()},
			node{"a/b/c/", types.None()},
			node{"a/b/c/x.tmp", types.Delete("tmp")},
		)
		p.Resolve(true)

		assert.Equal(t, types.Delete(types.ReasonEmptyDir), opOf(t, p, "a/b/c"))
		assert.Equal(t, types.Delete(types.ReasonEmptyDir), opOf(t, p, "a/b"))
		assert.True(t, opOf(t, p, "a").IsNone())
		assert.Equal(t, types.Delete("tmp"), opOf(t, p, "a/b/c/x.tmp"))
	})

	t.Run("chain without other children collapses fully", func(t *testing.T) {
		p := build(
			node{"a/", types.None()},
			node{"a/b/", types.None()},
			node{"a/b/c/", types.None()},
			node{"a/b/c/x.tmp", types.Delete("tmp")},
		)
		escalated := p.ResolveEmptyDirs()

		assert.Equal(t, 3, escalated)
		assert.True(t, opOf(t, p, "a").IsDelete())
	})

	t.Run("renamed and merged children keep their parent", func(t *testing.T) {
		p := build(
			node{"a/", types.None()},
			node{"a/x.txt", types.Rename("y.txt")},
			node{"b/", types.None()},
			node{"b/m/", types.MoveToParent()},
			node{"b/m/f", types.None()},
		)
		p.Resolve(true)

		assert.True(t, opOf(t, p, "a").IsNone())
		assert.True(t, opOf(t, p, "b").IsNone())
		assert.Equal(t, types.MoveToParent(), opOf(t, p, "b/m"))
	})

	t.Run("empty renamed directory is escalated", func(t *testing.T) {
		p := build(node{"[x]d/", types.Rename("d")})
		p.Resolve(true)
		assert.Equal(t, types.Delete(types.ReasonEmptyDir), opOf(t, p, "[x]d"))
	})

	t.Run("pinned children keep a directory alive", func(t *testing.T) {
		entries := []types.Entry{
			{Path: "/r/d", Name: "d", Depth: 1, Kind: types.KindDir, ChildCount: 1},
			{Path: "/r/d/.tmp", Name: ".tmp", Depth: 2, Kind: types.KindDir, Pinned: true},
		}
		p := plan.New(root, entries, nil)
		p.Resolve(true)

		assert.True(t, p.Empty())
	})

	t.Run("disabled pruning leaves directories alone", func(t *testing.T) {
		p := build(
			node{"a/", types.None()},
			node{"a/x.tmp", types.Delete("tmp")},
		)
		p.Resolve(false)
		assert.True(t, opOf(t, p, "a").IsNone())
	})
}

func TestPropagateDeletes(t *testing.T) {
	p := build(
		node{"a/", types.Delete("dir")},
		node{"a/x/", types.Rename("renamed")},
		node{"a/x/deep.txt", types.None()},
		node{"a/gone.tmp", types.Delete("tmp")},
		node{"b.txt", types.Rename("c.txt")},
	)
	changed := p.PropagateDeletes()

	assert.Equal(t, 2, changed)
	assert.Equal(t, types.ImpliedDelete("/r/a"), opOf(t, p, "a/x"))
	assert.Equal(t, types.ImpliedDelete("/r/a"), opOf(t, p, "a/x/deep.txt"))
	assert.Equal(t, types.Delete("tmp"), opOf(t, p, "a/gone.tmp"), "explicit deletes keep their reason")
	assert.Equal(t, types.Rename("c.txt"), opOf(t, p, "b.txt"))

	item, _ := p.Get("/r/a/x")
	assert.Equal(t, types.Rename("renamed"), item.Proposed)
}

func TestDeleteClosureInvariant(t *testing.T) {
	p := build(
		node{"a/", types.None()},
		node{"a/b/", types.None()},
		node{"a/b/x.tmp", types.Delete("tmp")},
		node{"a/c/", types.Delete("named")},
		node{"a/c/d/", types.MoveToParent()},
		node{"a/c/d/e.txt", types.Rename("f.txt")},
		node{"z.txt", types.None()},
	)
	p.Resolve(true)

	for _, item := range p.Items() {
		if !item.Op.IsDelete() {
			continue
		}
		prefix := item.Entry.Path + "/"
		for _, other := range p.Items() {
			if strings.HasPrefix(other.Entry.Path, prefix) {
				assert.True(t, other.Op.IsDelete(), "%s is below deleted %s", other.Entry.Path, item.Entry.Path)
			}
		}
	}
	assert.True(t, opOf(t, p, "a").IsDelete(), "a is left with only deleted children")
	assert.True(t, opOf(t, p, "z.txt").IsNone())
}

func TestIdempotentOnCleanTree(t *testing.T) {
	p := build(
		node{"a/", types.None()},
		node{"a/x.txt", types.None()},
		node{"b.txt", types.None()},
	)
	for i := 0; i < 2; i++ {
		p.Resolve(true)
		assert.True(t, p.Empty())
		assert.Empty(t, p.Actions())
	}
}

func TestResolveIsStable(t *testing.T) {
	p := build(
		node{"a/", types.None()},
		node{"a/b/", types.None()},
		node{"a/b/x.tmp", types.Delete("tmp")},
		node{"c/", types.Delete("c")},
		node{"c/d.txt", types.Rename("e.txt")},
	)
	p.Resolve(true)
	first := make(map[string]types.Operation)
	for _, item := range p.Items() {
		first[item.Entry.Path] = item.Op
	}

	p.Resolve(true)
	for _, item := range p.Items() {
		assert.Equal(t, first[item.Entry.Path], item.Op, item.Entry.Path)
	}
}

func TestOrdering(t *testing.T) {
	p := build(
		node{"a/", types.Delete("a")},
		node{"a/b/", types.None()},
		node{"a/b/c.txt", types.None()},
		node{"d.tmp", types.Delete("tmp")},
		node{"x/", types.Rename("y")},
		node{"x/m/", types.MoveToParent()},
		node{"x/m/n.txt", types.Rename("o.txt")},
		node{"p.txt", types.Rename("q.txt")},
	)
	p.Resolve(false)

	var deletes []string
	for _, item := range p.Deletes() {
		deletes = append(deletes, item.Entry.Path)
	}
	assert.Equal(t, []string{"/r/a/b/c.txt", "/r/a/b", "/r/a", "/r/d.tmp"}, deletes)

	var relocations []string
	for _, item := range p.Relocations() {
		relocations = append(relocations, item.Entry.Path)
	}
	assert.Equal(t, []string{"/r/x/m/n.txt", "/r/x/m", "/r/p.txt", "/r/x"}, relocations)

	assert.Equal(t, plan.Counts{Delete: 2, Implied: 2, Rename: 3, MoveToParent: 1}, p.Counts())
	assert.Len(t, p.Actions(), 8)
}
