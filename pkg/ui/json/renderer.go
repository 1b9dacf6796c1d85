// Package json writes reports as indented JSON, one document per call
package json

import (
	"encoding/json"
	"io"

	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/ui/display"
)

// Renderer encodes reports, errors and messages as JSON objects
type Renderer struct {
	enc *json.Encoder
}

// New returns a renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return &Renderer{enc: enc}, nil
}

func (r *Renderer) RenderResult(report *display.CleanReport) error {
	return r.enc.Encode(report)
}

// errorDoc is the shape of a rendered error
type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (r *Renderer) RenderError(err error) error {
	doc := errorDoc{Error: err.Error(), Details: errors.GetErrorDetails(err)}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc.Code = code
	}
	return r.enc.Encode(doc)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(struct {
		Message string `json:"message"`
	}{msg})
}
