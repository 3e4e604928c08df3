package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// resolveSubmissionID accepts a full submission ID or a unique prefix.
func resolveSubmissionID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("submission ID is required")
	}

	subs, err := app.Submissions.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range subs {
		if s.ID == input {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("submission not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("submission ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveActor turns a --as user name into a user ID; empty input is allowed
// and means no ledger posting.
func resolveActor(ctx context.Context, app *App, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	u, err := app.Users.GetByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("resolving user %q: %w", name, err)
	}
	return u.ID, nil
}

func newSubmissionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "submission",
		Aliases: []string{"sub"},
		Short:   "Manage submissions",
	}

	cmd.AddCommand(
		newSubmissionListCmd(app),
		newSubmissionAddCmd(app),
		newSubmissionInspectCmd(app),
		newSubmissionRemoveCmd(app),
		newSubmissionStatusCmd(app),
		newSubmissionPauseCmd(app),
		newSubmissionResumeCmd(app),
	)

	return cmd
}

func newSubmissionListCmd(app *App) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var subs []*domain.Submission
			var err error
			if team != "" {
				if !domain.ValidTeam(domain.TeamName(team)) {
					return fmt.Errorf("unknown team %q", team)
				}
				subs, err = app.Submissions.ListByTeam(ctx, domain.TeamName(team))
			} else {
				subs, err = app.Submissions.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(subs) == 0 {
				fmt.Println("No submissions found.")
				return nil
			}
			fmt.Print(formatter.FormatSubmissionList(subs, time.Now().UTC()))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Filter by team")

	return cmd
}

func newSubmissionAddCmd(app *App) *cobra.Command {
	var title, taskTitle, team, status, submitter, projectType, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			sub := &domain.Submission{
				Title:         title,
				TaskTitle:     taskTitle,
				ProjectType:   projectType,
				SubmitterName: submitter,
			}
			if team != "" {
				if !domain.ValidTeam(domain.TeamName(team)) {
					return fmt.Errorf("unknown team %q", team)
				}
				sub.Team = domain.TeamName(team)
			}
			if status != "" {
				parsed, ok := domain.ParseTaskStatus(status)
				if !ok {
					return fmt.Errorf("unknown status %q", status)
				}
				sub.Status = parsed
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				sub.BuildDueDate = &dueDate
			}

			if err := app.Submissions.Create(context.Background(), sub); err != nil {
				return err
			}
			fmt.Printf("Created submission %s (%s)\n", sub.Title, sub.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&taskTitle, "task", "", "Task title")
	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().StringVar(&status, "status", "", "Task status")
	cmd.Flags().StringVar(&submitter, "submitter", "", "Submitter name")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type")
	cmd.Flags().StringVar(&due, "due", "", "Build due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newSubmissionInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show submission details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubmissionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sub, err := app.Submissions.GetByID(ctx, id)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSubmissionDetail(sub,
				userNameOrEmpty(ctx, app, sub.DeveloperID),
				userNameOrEmpty(ctx, app, sub.QAID)))
			return nil
		},
	}
}

func userNameOrEmpty(ctx context.Context, app *App, id string) string {
	if id == "" {
		return ""
	}
	u, err := app.Users.GetByID(ctx, id)
	if err != nil {
		return id
	}
	return u.Name
}

func newSubmissionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID...",
		Short: "Delete submissions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := resolveSubmissionID(ctx, app, arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if err := app.Submissions.Delete(ctx, ids); err != nil {
				return err
			}
			fmt.Printf("Deleted %d submission(s)\n", len(ids))
			return nil
		},
	}
}

func newSubmissionStatusCmd(app *App) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Change a submission's status (drives the work timer)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubmissionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			status, ok := domain.ParseTaskStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown status %q", args[1])
			}
			actorID, err := resolveActor(ctx, app, actor)
			if err != nil {
				return err
			}

			sub, err := app.Timer.ChangeStatus(ctx, id, status, actorID)
			if err != nil {
				return err
			}
			fmt.Printf("%s → %s  %s  (%.2fh logged)\n",
				sub.Title, sub.Status, formatter.TimerIndicator(sub.TimerState), sub.LoggedHours)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "as", "", "Acting user name (receives logged hours)")

	return cmd
}

func newSubmissionPauseCmd(app *App) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "pause ID REASON",
		Short: "Pause a running work timer",
		Long:  "Pause a running work timer. Reason must be one of: " + strings.Join(domain.PauseReasons, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubmissionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			actorID, err := resolveActor(ctx, app, actor)
			if err != nil {
				return err
			}

			sub, err := app.Timer.Pause(ctx, id, args[1], actorID)
			if err != nil {
				return err
			}
			fmt.Printf("%s paused (%s), %.2fh logged\n", sub.Title, sub.PauseReason, sub.LoggedHours)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "as", "", "Acting user name (receives logged hours)")

	return cmd
}

func newSubmissionResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume ID",
		Short: "Resume a paused work timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubmissionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sub, err := app.Timer.Resume(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s resumed %s\n", sub.Title, formatter.TimerIndicator(sub.TimerState))
			return nil
		},
	}
}
