package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

type errorRow struct {
	log        *domain.ErrorLog
	submission string
	reporter   string
}

type errorsLoadedMsg struct {
	rows []errorRow
	err  error
}

// errorsView lists defect reports against the submissions the viewer can
// see. Members see only their team's reports.
type errorsView struct {
	state   *SharedState
	rows    []errorRow
	loading bool
	err     error
}

func newErrorsView(state *SharedState) *errorsView {
	return &errorsView{state: state, loading: true}
}

func (v *errorsView) ID() ViewID    { return ViewErrors }
func (v *errorsView) Title() string { return "Errors" }

func (v *errorsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *errorsView) Init() tea.Cmd {
	return v.load()
}

func (v *errorsView) load() tea.Cmd {
	state := v.state
	return func() tea.Msg {
		ctx := context.Background()
		subs, err := state.scopedSubmissions(ctx)
		if err != nil {
			return errorsLoadedMsg{err: err}
		}
		titles := make(map[string]string, len(subs))
		for _, s := range subs {
			titles[s.ID] = s.Title
		}

		logs, err := state.App.ErrorLogs.List(ctx)
		if err != nil {
			return errorsLoadedMsg{err: err}
		}

		var rows []errorRow
		for _, l := range logs {
			title, visible := titles[l.SubmissionID]
			if !visible {
				continue
			}
			rows = append(rows, errorRow{
				log:        l,
				submission: title,
				reporter:   userNameOrEmpty(ctx, state.App, l.ReportedByID),
			})
		}
		return errorsLoadedMsg{rows: rows}
	}
}

func (v *errorsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errorsLoadedMsg:
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

func (v *errorsView) View() string {
	switch {
	case v.loading:
		return "\n  " + formatter.StyleDim.Render("Loading...")
	case v.err != nil:
		return "\n  " + formatter.StyleRed.Render(v.err.Error())
	case len(v.rows) == 0:
		return "\n  " + formatter.StyleDim.Render("No error reports.")
	}

	headers := []string{"WHEN", "SUBMISSION", "REPORTED BY", "DESCRIPTION"}
	rows := make([][]string, 0, len(v.rows))
	for _, r := range v.rows {
		rows = append(rows, []string{
			r.log.Timestamp.Format("2006-01-02 15:04"),
			r.submission,
			r.reporter,
			r.log.Description,
		})
	}
	return formatter.RenderTable(headers, rows)
}
