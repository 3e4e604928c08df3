package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
)

func newNotificationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Assignment notifications",
	}

	cmd.AddCommand(
		newNotificationListCmd(app),
		newNotificationReadCmd(app),
	)

	return cmd
}

func newNotificationListCmd(app *App) *cobra.Command {
	var userName string
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.Users.GetByName(ctx, userName)
			if err != nil {
				return fmt.Errorf("looking up user %q: %w", userName, err)
			}

			notes, err := app.Notifications.ListForUser(ctx, user.ID)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, n := range notes {
				if unreadOnly && n.Read {
					continue
				}
				status := formatter.StyleYellow.Render("unread")
				if n.Read {
					status = formatter.StyleDim.Render("read")
				}
				rows = append(rows, []string{
					n.ID[:8],
					n.Timestamp.Format("2006-01-02 15:04"),
					status,
					n.Text,
				})
			}
			if len(rows) == 0 {
				fmt.Println("No notifications.")
				return nil
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "WHEN", "", "MESSAGE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&userName, "user", "", "User name")
	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread notifications")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newNotificationReadCmd(app *App) *cobra.Command {
	var userName string

	cmd := &cobra.Command{
		Use:   "read ID",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.Users.GetByName(ctx, userName)
			if err != nil {
				return fmt.Errorf("looking up user %q: %w", userName, err)
			}

			notes, err := app.Notifications.ListForUser(ctx, user.ID)
			if err != nil {
				return err
			}
			for _, n := range notes {
				if n.ID == args[0] || (len(args[0]) >= 4 && len(n.ID) >= len(args[0]) && n.ID[:len(args[0])] == args[0]) {
					if err := app.Notifications.MarkRead(ctx, n.ID); err != nil {
						return err
					}
					fmt.Printf("Marked %s as read.\n", n.ID[:8])
					return nil
				}
			}
			return fmt.Errorf("notification not found: %q", args[0])
		},
	}

	cmd.Flags().StringVar(&userName, "user", "", "User name")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
