// Package ui renders a clean report as a styled tree, plain text, JSON,
// YAML or XML.
package ui

import (
	"io"
	"os"

	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/ui/display"
	"github.com/kenchou/file-clean/pkg/ui/json"
	"github.com/kenchou/file-clean/pkg/ui/terminal"
	"github.com/kenchou/file-clean/pkg/ui/text"
	"github.com/kenchou/file-clean/pkg/ui/xml"
	"github.com/kenchou/file-clean/pkg/ui/yaml"
)

// Renderer writes reports, errors and messages in one format
type Renderer interface {
	RenderResult(report *display.CleanReport) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

var constructors = map[Format]func(io.Writer) (Renderer, error){
	FormatTerminal: func(w io.Writer) (Renderer, error) { return terminal.New(w) },
	FormatText:     func(w io.Writer) (Renderer, error) { return text.New(w) },
	FormatJSON:     func(w io.Writer) (Renderer, error) { return json.New(w) },
	FormatYAML:     func(w io.Writer) (Renderer, error) { return yaml.New(w) },
	FormatXML:      func(w io.Writer) (Renderer, error) { return xml.New(w) },
}

// NewRenderer returns the renderer for format. FormatAuto is resolved with
// DetectFormat when output is a file and falls back to the terminal
// renderer otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatTerminal
		if f, ok := output.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	newRenderer, ok := constructors[format]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
	return newRenderer(output)
}
