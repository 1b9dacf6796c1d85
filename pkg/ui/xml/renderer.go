// Package xml provides machine-readable XML output
package xml

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/ui/display"
)

// Renderer writes one XML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

// RenderResult renders the report as a <report> document
func (r *Renderer) RenderResult(report *display.CleanReport) error {
	doc := newDocument()
	root := doc.CreateElement("report")
	root.CreateAttr("target", report.Target)
	if report.Config != "" {
		root.CreateAttr("config", report.Config)
	}
	root.CreateAttr("dryRun", strconv.FormatBool(report.DryRun))
	root.CreateAttr("entries", strconv.Itoa(report.Entries))
	root.CreateAttr("duration", report.Duration.String())

	items := root.CreateElement("items")
	for _, item := range report.Items {
		el := items.CreateElement("item")
		el.CreateAttr("path", item.Path)
		el.CreateAttr("kind", item.Kind)
		el.CreateAttr("operation", item.Operation)
		el.CreateAttr("status", item.Status)
		optional(el, "reason", item.Reason)
		if item.Implied {
			el.CreateAttr("implied", "true")
		}
		optional(el, "newName", item.NewName)
		optional(el, "destination", item.Destination)
		optional(el, "linkTarget", item.LinkTarget)
		if item.BrokenLink {
			el.CreateAttr("brokenLink", "true")
		}
		if item.Error != "" {
			el.CreateElement("error").SetText(item.Error)
		}
	}

	s := report.Summary
	summary := root.CreateElement("summary")
	summary.CreateAttr("deleted", strconv.Itoa(s.Deleted))
	summary.CreateAttr("implied", strconv.Itoa(s.Implied))
	summary.CreateAttr("renamed", strconv.Itoa(s.Renamed))
	summary.CreateAttr("moved", strconv.Itoa(s.Moved))
	summary.CreateAttr("failed", strconv.Itoa(s.Failed))
	summary.CreateAttr("reclaimed", strconv.FormatInt(s.Reclaimed, 10))

	return r.write(doc)
}

func optional(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}

// RenderError renders an <error> document
func (r *Renderer) RenderError(err error) error {
	doc := newDocument()
	el := doc.CreateElement("error")
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		el.CreateAttr("code", string(code))
	}
	el.CreateElement("message").SetText(err.Error())
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		detail := el.CreateElement("detail")
		detail.CreateAttr("key", key)
		detail.SetText(fmt.Sprint(details[key]))
	}
	return r.write(doc)
}

// RenderMessage renders a <message> document
func (r *Renderer) RenderMessage(msg string) error {
	doc := newDocument()
	doc.CreateElement("message").SetText(msg)
	return r.write(doc)
}
