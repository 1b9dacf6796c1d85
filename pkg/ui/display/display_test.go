package display_test

import (
	"testing"

	"github.com/kenchou/file-clean/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *display.CleanReport {
	return &display.CleanReport{
		Target: "/data",
		Items: []display.Item{
			{Path: "b/old.tmp", Kind: "file", Operation: "delete", Reason: `^[^/]*\.tmp$`, Status: display.StatusDone},
			{Path: "a", Kind: "dir", Operation: "delete", Reason: "<EMPTY_DIR>", Status: display.StatusDone},
			{Path: "b/[x] c.txt", Kind: "file", Operation: "rename", NewName: "c.txt", Destination: "b/c(1).txt", Status: display.StatusDone},
			{Path: "[x]", Kind: "dir", Operation: "move_to_parent", Status: display.StatusFailed, Error: "boom"},
			{Path: "a/x", Kind: "file", Operation: "delete", Implied: true, Reason: "a", Status: display.StatusDone},
			{Path: "link", Kind: "symlink", Operation: "delete", Reason: "link", LinkTarget: "/nowhere", BrokenLink: true},
		},
	}
}

func TestBuildTree(t *testing.T) {
	root := display.BuildTree(sampleReport())
	assert.Equal(t, "/data", root.Name)

	var lines []string
	root.Walk(func(n *display.Node, depth int) {
		prefix := ""
		for i := 0; i < depth; i++ {
			prefix += "  "
		}
		lines = append(lines, prefix+display.Label(n, display.Plain{}))
	})

	assert.Equal(t, []string{
		"[^] [x] ✗ boom",
		"[-] a (<EMPTY_DIR>)",
		"  [-] x (with a)",
		"b",
		"  [*] [x] c.txt ==> c.txt (as c(1).txt)",
		`  [-] old.tmp (^[^/]*\.tmp$)`,
		"[-] link !> /nowhere (link)",
	}, lines)
}

func TestBuildTreeEmpty(t *testing.T) {
	root := display.BuildTree(&display.CleanReport{Target: "/data"})
	assert.Empty(t, root.Children)
}

func TestLabelWithoutItem(t *testing.T) {
	n := &display.Node{Name: "dir"}
	assert.Equal(t, "dir", display.Label(n, display.Plain{}))
}

func TestMarker(t *testing.T) {
	assert.Equal(t, display.MarkerDelete, display.Marker(&display.Item{Operation: "delete"}))
	assert.Equal(t, display.MarkerRename, display.Marker(&display.Item{Operation: "rename"}))
	assert.Equal(t, display.MarkerMoveToParent, display.Marker(&display.Item{Operation: "move_to_parent"}))
	assert.Equal(t, "", display.Marker(&display.Item{Operation: "none"}))
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name    string
		summary display.Summary
		want    string
	}{
		{"empty", display.Summary{}, "nothing to do"},
		{"deletes with size", display.Summary{Deleted: 2, Reclaimed: 4096}, "2 deleted (4.0 KiB)"},
		{"mixed", display.Summary{Deleted: 1, Implied: 3, Renamed: 2, Moved: 1, Failed: 1},
			"1 deleted, 3 removed with parent, 2 renamed, 1 merged into parent, 1 failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display.SummaryLine(tt.summary))
		})
	}

	s := display.Summary{Deleted: 1, Implied: 2, Renamed: 3, Moved: 4, Failed: 5}
	require.Equal(t, 10, s.Total())
}
