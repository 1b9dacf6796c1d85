// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/kenchou/file-clean/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult prints the report as an indented tree followed by a summary
func (r *Renderer) RenderResult(report *display.CleanReport) error {
	if len(report.Items) == 0 {
		_, err := fmt.Fprintf(r.output, "Nothing to clean in %s\n", report.Target)
		return err
	}

	var b strings.Builder
	b.WriteString(report.Target + "\n")
	display.BuildTree(report).Walk(func(n *display.Node, depth int) {
		b.WriteString(strings.Repeat("    ", depth+1))
		b.WriteString(display.Label(n, display.Plain{}))
		b.WriteByte('\n')
	})
	b.WriteString("\n" + display.SummaryLine(report.Summary) + "\n")
	if report.DryRun {
		b.WriteString(display.DryRunHint + "\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
