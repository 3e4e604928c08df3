package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

type pauseDoneMsg struct{ err error }

// pauseFormView asks for one of the fixed pause reasons before suspending a
// running timer.
type pauseFormView struct {
	state        *SharedState
	submissionID string
	title        string
	form         *huh.Form
	reason       string
	submitted    bool
	err          error
}

func newPauseFormView(state *SharedState, submissionID, title string) *pauseFormView {
	v := &pauseFormView{state: state, submissionID: submissionID, title: title}

	options := make([]huh.Option[string], 0, len(domain.PauseReasons))
	for _, r := range domain.PauseReasons {
		options = append(options, huh.NewOption(r, r))
	}
	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pause reason").
				Options(options...).
				Value(&v.reason),
		),
	).WithShowHelp(false)

	return v
}

func (v *pauseFormView) ID() ViewID    { return ViewPauseForm }
func (v *pauseFormView) Title() string { return "Pause" }

func (v *pauseFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *pauseFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *pauseFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pauseDoneMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, tea.Batch(popView(), refreshViews())

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, popView()
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.submitted {
		v.submitted = true
		return v, tea.Batch(cmd, v.pause())
	}
	return v, cmd
}

func (v *pauseFormView) pause() tea.Cmd {
	app := v.state.App
	actorID := ""
	if v.state.CurrentUser != nil {
		actorID = v.state.CurrentUser.ID
	}
	id, reason := v.submissionID, v.reason
	return func() tea.Msg {
		_, err := app.Timer.Pause(context.Background(), id, reason, actorID)
		return pauseDoneMsg{err: err}
	}
}

func (v *pauseFormView) View() string {
	out := "\n" + formatter.StyleHeader.Render("Pause timer: "+v.title) + "\n\n" + v.form.View()
	if v.err != nil {
		out += "\n" + formatter.StyleRed.Render(v.err.Error())
	}
	return out
}
