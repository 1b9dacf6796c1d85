package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTopics() fstest.MapFS {
	return fstest.MapFS{
		"help/dry-run.txt":       {Data: []byte("Information about dry-run mode")},
		"help/patterns.md":       {Data: []byte("# Patterns\n\nGlob syntax")},
		"help/option-prune.txt":  {Data: []byte("About --prune")},
		"help/config.txxt":       {Data: []byte("Configuration Guide")},
		"help/ignore.json":       {Data: []byte("{}")},
		"help/nested/deeper.txt": {Data: []byte("Nested topic")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(sampleTopics())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"dry-run", true, "Information about dry-run mode"},
			{"patterns", true, "# Patterns\n\nGlob syntax"},
			{"deeper", true, "Nested topic"},
			{"config", false, ""},
			{"ignore", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(sampleTopics(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("nil source", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(sampleTopics())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"prune", "--prune", "-prune", "option-prune"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "About --prune", topic.Content)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(sampleTopics())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"deeper", "dry-run", "option-prune", "patterns"}, tm.ListTopics())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "app", Short: "test app"}
	root.AddCommand(&cobra.Command{Use: "glob", Short: "compile globs", Run: func(*cobra.Command, []string) {}})
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestIntegration_HelpCommand(t *testing.T) {
	t.Run("topic list", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, sampleTopics()))

		out := execute(t, root, "help", "topics")
		assert.Contains(t, out, "General topics:")
		assert.Contains(t, out, "  dry-run")
		assert.Contains(t, out, "Option topics:")
		assert.Contains(t, out, "  --prune")
		assert.Contains(t, out, "Use 'app help <topic>'")
	})

	t.Run("plain topic", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, sampleTopics()))

		assert.Equal(t, "Information about dry-run mode", execute(t, root, "help", "dry-run"))
	})

	t.Run("markdown through glamour", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, InitializeWithOptions(root, sampleTopics(), Options{
			Renderer: &GlamourRenderer{Style: "notty", Width: 60},
		}))

		out := execute(t, root, "help", "patterns")
		assert.Contains(t, out, "Patterns")
		assert.Contains(t, out, "Glob syntax")
	})

	t.Run("command help", func(t *testing.T) {
		root := newRoot()
		require.NoError(t, Initialize(root, sampleTopics()))

		out := execute(t, root, "help", "glob")
		assert.Contains(t, out, "compile globs")
	})
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "*raw*", r.Render("*raw*", ".txt"))
}
