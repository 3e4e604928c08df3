package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/service"
)

type metricsLoadedMsg struct {
	rows []service.UtilizationRow
	err  error
}

// metricsView shows the utilization report, scoped to the viewer's team for
// members and to the whole organization for admins.
type metricsView struct {
	state   *SharedState
	rows    []service.UtilizationRow
	loading bool
	err     error
}

func newMetricsView(state *SharedState) *metricsView {
	return &metricsView{state: state, loading: true}
}

func (v *metricsView) ID() ViewID    { return ViewMetrics }
func (v *metricsView) Title() string { return "Utilization" }

func (v *metricsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *metricsView) Init() tea.Cmd {
	return v.load()
}

func (v *metricsView) load() tea.Cmd {
	app := v.state.App
	var filter service.UtilizationFilter
	if u := v.state.CurrentUser; u != nil && !u.IsAdmin() {
		filter.Team = u.Team
	}
	return func() tea.Msg {
		rows, err := app.Metrics.Utilization(context.Background(), filter)
		return metricsLoadedMsg{rows: rows, err: err}
	}
}

func (v *metricsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case metricsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.rows = msg.rows
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.load()
		}
	}
	return v, nil
}

func (v *metricsView) View() string {
	switch {
	case v.loading:
		return "\n  " + formatter.StyleDim.Render("Loading...")
	case v.err != nil:
		return "\n  " + formatter.StyleRed.Render(v.err.Error())
	case len(v.rows) == 0:
		return "\n  " + formatter.StyleDim.Render("No utilization data.")
	}
	return formatter.FormatUtilization(v.rows)
}
