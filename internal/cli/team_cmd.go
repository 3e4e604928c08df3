package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team rosters and submission counts",
	}

	cmd.AddCommand(
		newTeamCountsCmd(app),
		newTeamShowCmd(app),
	)

	return cmd
}

func newTeamCountsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Per-team submission counts for today and overall",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := app.Submissions.CountsByTeam(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTeamCounts(counts))
			return nil
		},
	}
}

func newTeamShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show TEAM",
		Short: "Print a team's lead and rosters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.TeamName(args[0])
			for _, ts := range app.Structures {
				if !strings.EqualFold(string(ts.Name), string(name)) {
					continue
				}
				fmt.Println(formatter.StyleHeader.Render(string(ts.Name)))
				fmt.Printf("Lead: %s\n\n", ts.Lead)
				printRoster("Build team", ts.BuildTeam)
				printRoster("QA team", ts.QATeam)
				return nil
			}
			return fmt.Errorf("unknown team %q (valid: %s)", args[0], joinTeamNames())
		},
	}
}

func printRoster(title string, members []domain.TeamMember) {
	fmt.Println(formatter.StyleBold.Render(title))
	if len(members) == 0 {
		fmt.Println("  (empty)")
		return
	}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.Name, m.Buddy, m.Notes})
	}
	fmt.Print(formatter.RenderTable([]string{"NAME", "BUDDY", "NOTES"}, rows))
	fmt.Println()
}

func joinTeamNames() string {
	names := make([]string, 0, len(domain.AllTeams))
	for _, t := range domain.AllTeams {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
