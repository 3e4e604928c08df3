package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/service"
)

func newMetricsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Utilization reports and time logging",
	}

	cmd.AddCommand(
		newMetricsReportCmd(app),
		newMetricsLogCmd(app),
		newMetricsSeriesCmd(app),
	)

	return cmd
}

func newMetricsReportCmd(app *App) *cobra.Command {
	var team, user, lead, from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Per-user utilization report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			filter := service.UtilizationFilter{Lead: lead}

			if team != "" {
				if !domain.ValidTeam(domain.TeamName(team)) {
					return fmt.Errorf("unknown team %q", team)
				}
				filter.Team = domain.TeamName(team)
			}
			if user != "" {
				u, err := app.Users.GetByName(ctx, user)
				if err != nil {
					return err
				}
				filter.UserID = u.ID
			}
			if from != "" && to != "" {
				start, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid --from date %q: %w", from, err)
				}
				end, err := time.Parse("2006-01-02", to)
				if err != nil {
					return fmt.Errorf("invalid --to date %q: %w", to, err)
				}
				filter.Start = &start
				filter.End = &end
			}

			report, err := app.Metrics.Utilization(ctx, filter)
			if err != nil {
				return err
			}
			if len(report) == 0 {
				fmt.Println("No users matched the filter.")
				return nil
			}
			fmt.Print(formatter.FormatUtilization(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Filter by team")
	cmd.Flags().StringVar(&user, "user", "", "Filter by user name")
	cmd.Flags().StringVar(&lead, "lead", "", "Filter by team lead (overrides --team)")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")

	return cmd
}

func newMetricsLogCmd(app *App) *cobra.Command {
	var user, date string
	var hours float64

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Post a manual ledger entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.Users.GetByName(ctx, user)
			if err != nil {
				return err
			}

			day := time.Now().UTC()
			if date != "" {
				if day, err = time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
			}

			if err := app.Metrics.AddEntry(ctx, u.ID, hours, day); err != nil {
				return err
			}
			fmt.Printf("Logged %.2fh for %s on %s\n", hours, u.Name, domain.DayStart(day).Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User name")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours to log")
	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newMetricsSeriesCmd(app *App) *cobra.Command {
	var user, from, to string

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Daily hours for one user over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.Users.GetByName(ctx, user)
			if err != nil {
				return err
			}
			start, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fmt.Errorf("invalid --from date %q: %w", from, err)
			}
			end, err := time.Parse("2006-01-02", to)
			if err != nil {
				return fmt.Errorf("invalid --to date %q: %w", to, err)
			}

			series, err := app.Metrics.DailySeries(ctx, u.ID, start, end)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(series))
			for _, m := range series {
				rows = append(rows, []string{m.Day.Format("2006-01-02"), fmt.Sprintf("%.2fh", m.Hours)})
			}
			fmt.Print(formatter.RenderTable([]string{"DAY", "HOURS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User name")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
