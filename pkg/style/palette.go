package style

import "github.com/charmbracelet/lipgloss"

// Adaptive colors switch with the terminal background
var (
	MutedColor = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	PathColor  = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}

	// One color per plan operation
	DeleteColor = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	RenameColor = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"}
	MoveColor   = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
	LinkColor   = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"}
)

