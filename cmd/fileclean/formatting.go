package fileclean

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// usageFuncs are available to the usage template. Bold is dropped when
// stdout is not a terminal so piped help stays plain.
var usageFuncs = template.FuncMap{
	"bold":      bold,
	"upper":     strings.ToUpper,
	"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
}

func bold(s string) string {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return pterm.Bold.Sprint(s)
	}
	return s
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(usageFuncs)
}
