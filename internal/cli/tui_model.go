package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
)

// dashModel is the root bubbletea Model for the TUI. It manages a view
// stack; the bottom view after login is always the overview.
type dashModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newDashModel(app *App) dashModel {
	state := &SharedState{App: app}
	return dashModel{
		state:     state,
		viewStack: []View{newLoginView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *dashModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *dashModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m dashModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	// Forward other messages (ticks, data loads, form blinks) to the top view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m dashModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms own the keyboard entirely.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		// Tab switching is only available once logged in.
		if m.state.CurrentUser == nil {
			break
		}
		return m, m.switchTab(msg.String())

	case "esc":
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// switchTab replaces the whole stack with the selected top-level view.
func (m *dashModel) switchTab(key string) tea.Cmd {
	var v View
	switch key {
	case "1":
		v = newOverviewView(m.state)
	case "2":
		v = newProjectsView(m.state)
	case "3":
		v = newMetricsView(m.state)
	case "4":
		v = newErrorsView(m.state)
	case "5":
		v = newDocsView(m.state)
	default:
		return nil
	}
	if active := m.activeView(); active != nil && active.ID() == v.ID() {
		return nil
	}
	m.viewStack = []View{v}
	return v.Init()
}

func (m dashModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *dashModel) renderHeader() string {
	title := formatter.StylePurple.Render("dashboard")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.StyleDim.Render("›") + " " +
			formatter.StyleDim.Render(strings.Join(crumbs, " › "))
	}

	if u := m.state.CurrentUser; u != nil {
		who := u.Name
		if u.Team != "" {
			who += " · " + string(u.Team)
		}
		header += "  " + formatter.StyleDim.Render("[") +
			formatter.StyleGreen.Render(who) + formatter.StyleDim.Render("]")
	}

	sep := formatter.StyleDim.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m dashModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.StyleDim.Render(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if m.state.CurrentUser != nil {
		hints = append(hints, formatter.StyleDim.Render("1-5: tabs"))
	}
	hints = append(hints, formatter.StyleDim.Render("q: quit"))

	sep := formatter.StyleDim.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput reports whether the active view has its own text input
// and should receive all key events, bypassing global keybindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewLogin, ViewPauseForm:
		return true
	}
	return false
}
