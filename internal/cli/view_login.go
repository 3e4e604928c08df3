package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/service"
)

// loginResultMsg carries the outcome of a credential check.
type loginResultMsg struct {
	user *domain.User
	err  error
}

// loginView gates the dashboard behind a name/password form.
type loginView struct {
	state    *SharedState
	form     *huh.Form
	name     string
	password string
	errText  string
	checking bool
}

func newLoginView(state *SharedState) *loginView {
	v := &loginView{state: state}
	v.form = v.buildForm()
	return v
}

func (v *loginView) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&v.name),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password),
		),
	).WithShowHelp(false)
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "Login" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		v.checking = false
		if result.err != nil {
			if errors.Is(result.err, service.ErrInvalidCredentials) {
				v.errText = "Invalid name or password."
			} else {
				v.errText = result.err.Error()
			}
			v.password = ""
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		v.state.CurrentUser = result.user
		next := newOverviewView(v.state)
		return v, replaceView(next)
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.checking {
		v.checking = true
		return v, tea.Batch(cmd, v.authenticate())
	}
	return v, cmd
}

func (v *loginView) authenticate() tea.Cmd {
	app := v.state.App
	name, password := v.name, v.password
	return func() tea.Msg {
		user, err := app.Users.Authenticate(context.Background(), name, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (v *loginView) View() string {
	out := "\n" + formatter.StyleHeader.Render("Sign in") + "\n\n" + v.form.View()
	if v.checking {
		out += "\n" + formatter.StyleDim.Render("Checking credentials...")
	}
	if v.errText != "" {
		out += "\n" + formatter.StyleRed.Render(v.errText)
	}
	return out
}
