package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

type docsLoadedMsg struct {
	docs []*domain.DmsDocument
	err  error
}

// docsView browses knowledge-base documents: a list with a cursor, enter
// toggles the selected document's body inline.
type docsView struct {
	state    *SharedState
	docs     []*domain.DmsDocument
	cursor   int
	expanded bool
	loading  bool
	err      error
}

func newDocsView(state *SharedState) *docsView {
	return &docsView{state: state, loading: true}
}

func (v *docsView) ID() ViewID    { return ViewDocs }
func (v *docsView) Title() string { return "Docs" }

func (v *docsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/close")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *docsView) Init() tea.Cmd {
	return v.load()
}

func (v *docsView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		docs, err := app.Documents.List(context.Background())
		return docsLoadedMsg{docs: docs, err: err}
	}
}

func (v *docsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case docsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.docs = msg.docs
			if v.cursor >= len(v.docs) {
				v.cursor = max(len(v.docs)-1, 0)
			}
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				v.expanded = false
			}
		case "down", "j":
			if v.cursor < len(v.docs)-1 {
				v.cursor++
				v.expanded = false
			}
		case "enter":
			if len(v.docs) > 0 {
				v.expanded = !v.expanded
			}
		case "r":
			v.loading = true
			return v, v.load()
		}
	}
	return v, nil
}

func (v *docsView) View() string {
	switch {
	case v.loading:
		return "\n  " + formatter.StyleDim.Render("Loading...")
	case v.err != nil:
		return "\n  " + formatter.StyleRed.Render(v.err.Error())
	case len(v.docs) == 0:
		return "\n  " + formatter.StyleDim.Render("No documents.")
	}

	var b strings.Builder
	for i, d := range v.docs {
		marker := "  "
		title := d.Title
		if i == v.cursor {
			marker = formatter.StyleGreen.Render("› ")
			title = formatter.StyleBold.Render(title)
		}
		b.WriteString(marker + title + "  " +
			formatter.StyleDim.Render(d.LastUpdated.Format("2006-01-02")) + "\n")
		if i == v.cursor && v.expanded {
			for _, line := range strings.Split(strings.TrimRight(d.Content, "\n"), "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}
	return b.String()
}
