package style

import "github.com/charmbracelet/lipgloss"

var (
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle    = lipgloss.NewStyle().Foreground(PathColor).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
)

// Operation styles
var (
	DeleteStyle = lipgloss.NewStyle().Foreground(DeleteColor).Bold(true)
	RenameStyle = lipgloss.NewStyle().Foreground(RenameColor).Bold(true)
	MoveStyle   = lipgloss.NewStyle().Foreground(MoveColor).Bold(true)
	LinkStyle   = lipgloss.NewStyle().Foreground(LinkColor)

	// ImpliedStyle marks entries removed together with an ancestor
	ImpliedStyle = lipgloss.NewStyle().Foreground(DeleteColor).Faint(true)
)

// Bold renders s in bold
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
