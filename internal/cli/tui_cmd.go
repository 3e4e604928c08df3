package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTuiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive full-screen dashboard",
		Long: `Start the full-screen terminal dashboard. After signing in, the
number keys switch between the overview, project list, utilization
report, error reports, and document views. The project list updates
its elapsed-time column live while a timer is running.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("the dashboard requires an interactive terminal")
			}
			p := tea.NewProgram(newDashModel(app), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}
}
