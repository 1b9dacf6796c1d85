package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBold(t *testing.T) {
	assert.Contains(t, Bold("Hello World"), "Hello World")
}

func TestMarkupRender(t *testing.T) {
	t.Run("operation tags", func(t *testing.T) {
		out := Render("[delete]3 deleted[/delete], [rename]2 renamed[/rename]")
		assert.Contains(t, out, "3 deleted")
		assert.Contains(t, out, "2 renamed")
		assert.NotContains(t, out, "[delete]")
		assert.NotContains(t, out, "[/rename]")
	})

	t.Run("nested tags", func(t *testing.T) {
		out := Render("[bold][move]merged[/move][/bold]")
		assert.Contains(t, out, "merged")
		assert.NotContains(t, out, "[move]")
		assert.NotContains(t, out, "[bold]")
	})

	t.Run("unknown tags are kept", func(t *testing.T) {
		assert.Equal(t, "[-] file.tmp", Render("[-] file.tmp"))
	})

	t.Run("template variables", func(t *testing.T) {
		out := RenderTemplate("[path]{{target}}[/path] is clean", map[string]string{"target": "/data"})
		assert.Contains(t, out, "/data")
		assert.Contains(t, out, "is clean")
		assert.NotContains(t, out, "{{target}}")
	})

	t.Run("mismatched tags are kept", func(t *testing.T) {
		assert.Equal(t, "[bold]x[/move]", Render("[bold]x[/move]"))
	})

	t.Run("custom style", func(t *testing.T) {
		p := NewMarkupParser()
		p.AddStyle("custom", lipgloss.NewStyle())
		assert.Equal(t, "plain", p.Render("[custom]plain[/custom]"))
	})
}
