// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kenchou/file-clean/pkg/style"
	"github.com/kenchou/file-clean/pkg/ui/display"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Renderer draws the report as a pterm tree with a styled summary
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders the report tree and summary
func (r *Renderer) RenderResult(report *display.CleanReport) error {
	if len(report.Items) == 0 {
		_, err := fmt.Fprintln(r.output, style.RenderTemplate(
			"[success]Nothing to clean[/success] in [path]{{target}}[/path]",
			map[string]string{"target": report.Target}))
		return err
	}

	var list pterm.LeveledList
	styler := termStyler{}
	display.BuildTree(report).Walk(func(n *display.Node, depth int) {
		list = append(list, pterm.LeveledListItem{Level: depth, Text: display.Label(n, styler)})
	})
	root := putils.TreeFromLeveledList(list)
	root.Text = style.PathStyle.Render(report.Target)

	tree, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(tree)
	b.WriteString("\n")
	b.WriteString(style.Render(summaryMarkup(report.Summary)))
	b.WriteString("\n")
	if report.DryRun {
		b.WriteString(style.MutedStyle.Render(display.DryRunHint))
		b.WriteString("\n")
	}

	_, err = io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with the pterm error prefix
func (r *Renderer) RenderError(err error) error {
	pterm.Error.WithWriter(r.output).Println(err.Error())
	return nil
}

// RenderMessage renders a message with the pterm info prefix
func (r *Renderer) RenderMessage(msg string) error {
	pterm.Info.WithWriter(r.output).Println(msg)
	return nil
}

func summaryMarkup(s display.Summary) string {
	var parts []string
	add := func(n int, tag, what string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("[%s]%d %s[/%s]", tag, n, what, tag))
		}
	}
	add(s.Deleted, "delete", "deleted")
	add(s.Implied, "implied", "removed with parent")
	add(s.Renamed, "rename", "renamed")
	add(s.Moved, "move", "merged into parent")
	add(s.Failed, "error", "failed")

	line := strings.Join(parts, ", ")
	if s.Reclaimed > 0 {
		line += " [muted](" + humanize.IBytes(uint64(s.Reclaimed)) + ")[/muted]"
	}
	return line
}
