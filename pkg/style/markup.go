package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tagPattern matches an innermost [tag]...[/tag] pair. Content may hold
// ANSI sequences from an inner tag rendered on an earlier pass, but no
// unrendered opening bracket.
var tagPattern = regexp.MustCompile(`\[([a-z]+)\]((?:[^\[\x1b]|\x1b\[[0-9;]*m)*)\[/([a-z]+)\]`)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser returns a parser that knows the status and operation tags
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"success": SuccessStyle,
			"error":   ErrorStyle,
			"warning": WarningStyle,
			"path":    PathStyle,
			"muted":   MutedStyle,
			"bold":    lipgloss.NewStyle().Bold(true),

			"delete":  DeleteStyle,
			"implied": ImpliedStyle,
			"rename":  RenameStyle,
			"move":    MoveStyle,
			"link":    LinkStyle,
		},
	}
}

// AddStyle registers or replaces the style for tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
}

// Render replaces known tags innermost first. Unknown or mismatched tags
// are left in the text.
func (p *MarkupParser) Render(text string) string {
	for {
		next := tagPattern.ReplaceAllStringFunc(text, func(match string) string {
			m := tagPattern.FindStringSubmatch(match)
			style, ok := p.styles[m[1]]
			if !ok || m[1] != m[3] {
				return match
			}
			return style.Render(m[2])
		})
		if next == text {
			return text
		}
		text = next
	}
}

// RenderTemplate substitutes {{name}} placeholders, then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	pairs := make([]string, 0, 2*len(vars))
	for key, value := range vars {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return p.Render(strings.NewReplacer(pairs...).Replace(template))
}

var defaultParser = NewMarkupParser()

// Render renders markup with the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate renders a template with the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
