package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/service"
)

type overviewLoadedMsg struct {
	stats *service.DashboardStats
	err   error
}

// overviewView shows the role-scoped dashboard statistics.
type overviewView struct {
	state   *SharedState
	stats   *service.DashboardStats
	loading bool
	err     error
}

func newOverviewView(state *SharedState) *overviewView {
	return &overviewView{state: state, loading: true}
}

func (v *overviewView) ID() ViewID    { return ViewOverview }
func (v *overviewView) Title() string { return "Overview" }

func (v *overviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *overviewView) Init() tea.Cmd {
	return v.load()
}

func (v *overviewView) load() tea.Cmd {
	app := v.state.App
	viewer := v.state.CurrentUser
	return func() tea.Msg {
		stats, err := app.Metrics.DashboardStats(context.Background(), viewer)
		return overviewLoadedMsg{stats: stats, err: err}
	}
}

func (v *overviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewLoadedMsg:
		v.loading = false
		v.stats = msg.stats
		v.err = msg.err
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.load()
		}
	}
	return v, nil
}

func (v *overviewView) View() string {
	switch {
	case v.loading:
		return "\n  " + formatter.StyleDim.Render("Loading...")
	case v.err != nil:
		return "\n  " + formatter.StyleRed.Render(v.err.Error())
	case v.stats == nil:
		return ""
	}
	return formatter.FormatDashboardStats(v.stats)
}
