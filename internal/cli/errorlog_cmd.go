package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
)

func newErrorLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Defect reports against submissions",
	}

	cmd.AddCommand(
		newErrorLogListCmd(app),
		newErrorLogReportCmd(app),
	)

	return cmd
}

func newErrorLogListCmd(app *App) *cobra.Command {
	var submission string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List error logs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			logs, err := app.ErrorLogs.List(ctx)
			if submission != "" {
				var id string
				if id, err = resolveSubmissionID(ctx, app, submission); err == nil {
					logs, err = app.ErrorLogs.ListBySubmission(ctx, id)
				}
			}
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println("No error logs found.")
				return nil
			}

			rows := make([][]string, 0, len(logs))
			for _, l := range logs {
				rows = append(rows, []string{
					l.Timestamp.Format("2006-01-02 15:04"),
					l.SubmissionID[:8],
					userNameOrEmpty(ctx, app, l.ReportedByID),
					l.Description,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"WHEN", "SUBMISSION", "REPORTER", "DESCRIPTION"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&submission, "submission", "", "Filter by submission ID")

	return cmd
}

func newErrorLogReportCmd(app *App) *cobra.Command {
	var reporter string

	cmd := &cobra.Command{
		Use:   "report ID DESCRIPTION",
		Short: "File a defect against a submission",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubmissionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			reporterID, err := resolveActor(ctx, app, reporter)
			if err != nil {
				return err
			}

			log, err := app.ErrorLogs.Report(ctx, id, args[1], reporterID)
			if err != nil {
				return err
			}
			fmt.Printf("Filed error %s\n", log.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&reporter, "by", "", "Reporting user name")

	return cmd
}
