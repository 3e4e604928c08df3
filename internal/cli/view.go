package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewLogin ViewID = iota
	ViewOverview
	ViewProjects
	ViewMetrics
	ViewErrors
	ViewDocs
	ViewPauseForm
)

// View is the interface all TUI views implement. It extends tea.Model with
// navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// ── navigation messages ──────────────────────────────────────────────────────

type pushViewMsg struct{ view View }
type popViewMsg struct{}
type replaceViewMsg struct{ view View }

// refreshViewMsg asks every view on the stack to reload its data. Broadcast
// after mutations so underlying views pick up changes made above them.
type refreshViewMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
