package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

type projectsLoadedMsg struct {
	subs []*domain.Submission
	err  error
}

// projectsTickMsg redraws the live elapsed column once a second.
type projectsTickMsg time.Time

// timerActionMsg carries the outcome of a timer mutation.
type timerActionMsg struct{ err error }

// projectsView lists the visible submissions with a live timer column and
// drives status and pause/resume transitions from the keyboard.
type projectsView struct {
	state   *SharedState
	subs    []*domain.Submission
	cursor  int
	now     time.Time
	loading bool
	err     error
}

func newProjectsView(state *SharedState) *projectsView {
	return &projectsView{state: state, loading: true, now: time.Now()}
}

func (v *projectsView) ID() ViewID    { return ViewProjects }
func (v *projectsView) Title() string { return "Projects" }

func (v *projectsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause timer")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "resume timer")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *projectsView) Init() tea.Cmd {
	return tea.Batch(v.load(), projectsTick())
}

func projectsTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return projectsTickMsg(t)
	})
}

func (v *projectsView) load() tea.Cmd {
	state := v.state
	return func() tea.Msg {
		subs, err := state.scopedSubmissions(context.Background())
		return projectsLoadedMsg{subs: subs, err: err}
	}
}

func (v *projectsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.subs = msg.subs
			if v.cursor >= len(v.subs) {
				v.cursor = max(len(v.subs)-1, 0)
			}
		}
		return v, nil

	case projectsTickMsg:
		v.now = time.Time(msg)
		return v, projectsTick()

	case timerActionMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		return v, v.load()

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.subs)-1 {
				v.cursor++
			}
		case "s":
			if s := v.selected(); s != nil {
				return v, v.changeStatus(s.ID, nextStatus(s.Status))
			}
		case "p":
			if s := v.selected(); s != nil && s.TimerState == domain.TimerRunning {
				return v, pushView(newPauseFormView(v.state, s.ID, s.Title))
			}
		case "u":
			if s := v.selected(); s != nil && s.TimerState == domain.TimerPaused {
				return v, v.resume(s.ID)
			}
		case "r":
			v.loading = true
			return v, v.load()
		}
	}
	return v, nil
}

func (v *projectsView) selected() *domain.Submission {
	if v.cursor < 0 || v.cursor >= len(v.subs) {
		return nil
	}
	return v.subs[v.cursor]
}

// nextStatus advances through the closed status set in display order,
// wrapping at the end.
func nextStatus(cur domain.TaskStatus) domain.TaskStatus {
	for i, s := range domain.AllTaskStatuses {
		if s == cur {
			return domain.AllTaskStatuses[(i+1)%len(domain.AllTaskStatuses)]
		}
	}
	return domain.StatusPending
}

func (v *projectsView) changeStatus(id string, status domain.TaskStatus) tea.Cmd {
	app := v.state.App
	actorID := ""
	if v.state.CurrentUser != nil {
		actorID = v.state.CurrentUser.ID
	}
	return func() tea.Msg {
		_, err := app.Timer.ChangeStatus(context.Background(), id, status, actorID)
		return timerActionMsg{err: err}
	}
}

func (v *projectsView) resume(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		_, err := app.Timer.Resume(context.Background(), id)
		return timerActionMsg{err: err}
	}
}

func (v *projectsView) View() string {
	if v.loading {
		return "\n  " + formatter.StyleDim.Render("Loading...")
	}
	if len(v.subs) == 0 {
		return "\n  " + formatter.StyleDim.Render("No submissions.")
	}

	headers := []string{"", "ID", "TITLE", "TEAM", "STATUS", "TIMER", "ELAPSED", "LOGGED"}
	rows := make([][]string, 0, len(v.subs))
	for i, s := range v.subs {
		marker := " "
		if i == v.cursor {
			marker = formatter.StyleGreen.Render("›")
		}
		rows = append(rows, []string{
			marker,
			s.ID[:8],
			s.Title,
			string(s.Team),
			formatter.StatusStyle(s.Status).Render(string(s.Status)),
			formatter.TimerIndicator(s.TimerState),
			s.ElapsedDisplay(v.now),
			fmt.Sprintf("%.2fh", s.LoggedHours),
		})
	}

	out := formatter.RenderTable(headers, rows)
	if v.err != nil {
		out += "\n" + formatter.StyleRed.Render(v.err.Error())
	}
	return out
}
