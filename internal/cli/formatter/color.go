package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style used for a task status.
func StatusStyle(status domain.TaskStatus) lipgloss.Style {
	switch status {
	case domain.StatusInProgress:
		return StyleBlue
	case domain.StatusCompleted:
		return StyleGreen
	case domain.StatusQAReview:
		return StylePurple
	case domain.StatusWaitingOnCustomer:
		return StyleYellow
	default:
		return StyleDim
	}
}

// TimerIndicator renders the timer state as a colored marker.
func TimerIndicator(state domain.TimerState) string {
	switch state {
	case domain.TimerRunning:
		return StyleGreen.Render("● running")
	case domain.TimerPaused:
		return StyleYellow.Render("● paused")
	default:
		return StyleDim.Render("○ stopped")
	}
}
