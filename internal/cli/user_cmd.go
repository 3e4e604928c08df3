package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(
		newUserListCmd(app),
		newUserAddCmd(app),
		newUserRemoveCmd(app),
		newUserPasswdCmd(app),
	)

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{u.Name, string(u.Role), string(u.Team)})
			}
			fmt.Print(formatter.RenderTable([]string{"NAME", "ROLE", "TEAM"}, rows))
			return nil
		},
	}
}

func newUserAddCmd(app *App) *cobra.Command {
	var name, password, role, team string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			userRole := domain.RoleMember
			if role == string(domain.RoleAdmin) {
				userRole = domain.RoleAdmin
			} else if role != "" && role != string(domain.RoleMember) {
				return fmt.Errorf("unknown role %q", role)
			}
			if team != "" && !domain.ValidTeam(domain.TeamName(team)) {
				return fmt.Errorf("unknown team %q", team)
			}

			u, err := app.Users.Create(context.Background(), name, password, userRole, domain.TeamName(team))
			if err != nil {
				return err
			}
			fmt.Printf("Created %s user %s\n", u.Role, u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	cmd.Flags().StringVar(&role, "role", "member", "Role (admin or member)")
	cmd.Flags().StringVar(&team, "team", "", "Team name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.Users.GetByName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Delete(ctx, u.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted user %s\n", u.Name)
			return nil
		},
	}
}

func newUserPasswdCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd NAME",
		Short: "Change a user's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.Users.GetByName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Users.Update(ctx, u, password); err != nil {
				return err
			}
			fmt.Printf("Updated password for %s\n", u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
