package converter_test

import (
	"context"
	"syscall"
	"testing"

	"github.com/kenchou/file-clean/pkg/commands/clean"
	"github.com/kenchou/file-clean/pkg/config"
	"github.com/kenchou/file-clean/pkg/testutil"
	"github.com/kenchou/file-clean/pkg/ui/converter"
	"github.com/kenchou/file-clean/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, fsys *testutil.FaultyFS, dryRun bool) *clean.CleanResult {
	t.Helper()
	cfg, err := config.Defaults()
	require.NoError(t, err)
	cfg.Patterns = config.Patterns{
		Remove:  []string{"*.tmp", "cache"},
		Cleanup: []string{"/^\\[x\\] "},
	}

	result, _ := clean.Clean(context.Background(), clean.CleanOptions{
		Target:     "/r",
		Config:     cfg,
		DryRun:     dryRun,
		FileSystem: fsys,
	})
	require.NotNil(t, result)
	return result
}

func tree(t *testing.T) *testutil.FaultyFS {
	base := testutil.NewTestFS()
	testutil.CreateTree(t, base, "/r", testutil.Tree{
		"d/a.tmp":       "12345",
		"d/b.tmp":       "1",
		"[x] f.txt":     "f",
		"f.txt":         "taken",
		"cache/x.bin":   "xx",
		"cache/y/z.bin": "z",
	})
	return testutil.NewFaultyFS(base)
}

func TestConvertToDisplayDryRun(t *testing.T) {
	report := converter.ConvertToDisplay(run(t, tree(t), true))

	assert.Equal(t, "/r", report.Target)
	assert.True(t, report.DryRun)
	assert.Equal(t, 9, report.Entries)

	byPath := map[string]display.Item{}
	for _, item := range report.Items {
		byPath[item.Path] = item
		assert.Equal(t, display.StatusPlanned, item.Status, item.Path)
	}
	require.Len(t, byPath, 8)

	assert.Equal(t, "delete", byPath["d"].Operation)
	assert.Equal(t, "<EMPTY_DIR>", byPath["d"].Reason)
	assert.False(t, byPath["d/a.tmp"].Implied, "matched entries keep their own reason")
	assert.Equal(t, `^[^/]*\.tmp$`, byPath["d/a.tmp"].Reason)
	assert.Equal(t, `^cache$`, byPath["cache"].Reason)
	assert.True(t, byPath["cache/y/z.bin"].Implied)
	assert.Equal(t, "cache", byPath["cache/y/z.bin"].Reason)
	assert.Equal(t, "rename", byPath["[x] f.txt"].Operation)
	assert.Equal(t, "f.txt", byPath["[x] f.txt"].NewName)
	assert.Equal(t, "f(1).txt", byPath["[x] f.txt"].Destination)

	assert.Equal(t, display.Summary{Deleted: 4, Implied: 3, Renamed: 1, Reclaimed: 9}, report.Summary)
}

func TestConvertToDisplayFailures(t *testing.T) {
	fsys := tree(t).
		Fail("Remove", "/r/d", syscall.EACCES).
		Fail("RemoveAll", "/r/d", syscall.EACCES)
	report := converter.ConvertToDisplay(run(t, fsys, false))

	var failed []display.Item
	for _, item := range report.Items {
		if item.Status == display.StatusFailed {
			failed = append(failed, item)
		}
	}
	require.Len(t, failed, 1)
	assert.Equal(t, "d", failed[0].Path)
	assert.Contains(t, failed[0].Error, "DELETE_FAILED")
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 3, report.Summary.Implied)
	assert.Equal(t, 3, report.Summary.Deleted)
}
