package cli

import (
	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Users         service.UserService
	Submissions   service.SubmissionService
	Timer         service.TimerService
	Import        service.ImportService
	Metrics       service.MetricsService
	ErrorLogs     service.ErrorLogService
	Notifications service.NotificationService
	Documents     service.DocumentService

	// Structures is the seeded team roster data, read-only at runtime.
	Structures []domain.TeamStructure

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dashboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Project-tracking dashboard with work timers and utilization metrics",
	}

	root.AddCommand(
		newSubmissionCmd(app),
		newUserCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newMetricsCmd(app),
		newErrorLogCmd(app),
		newNotificationCmd(app),
		newDocCmd(app),
		newTeamCmd(app),
		newTuiCmd(app),
	)

	return root
}
