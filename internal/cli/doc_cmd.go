package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
)

func newDocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Knowledge-base documents",
	}

	cmd.AddCommand(
		newDocListCmd(app),
		newDocAddCmd(app),
		newDocShowCmd(app),
	)

	return cmd
}

func newDocListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			docs, err := app.Documents.List(ctx)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println("No documents found.")
				return nil
			}

			rows := make([][]string, 0, len(docs))
			for _, d := range docs {
				rows = append(rows, []string{
					d.ID[:8],
					d.Title,
					userNameOrEmpty(ctx, app, d.AuthorID),
					d.LastUpdated.Format("2006-01-02"),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TITLE", "AUTHOR", "UPDATED"}, rows))
			return nil
		},
	}
}

func newDocAddCmd(app *App) *cobra.Command {
	var title, content, file, author string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading content file: %w", err)
				}
				content = string(data)
			}
			authorID, err := resolveActor(ctx, app, author)
			if err != nil {
				return err
			}

			d, err := app.Documents.Create(ctx, title, content, authorID)
			if err != nil {
				return err
			}
			fmt.Printf("Created document %s (%s)\n", d.Title, d.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVar(&content, "content", "", "Document body")
	cmd.Flags().StringVar(&file, "file", "", "Read body from a file")
	cmd.Flags().StringVar(&author, "author", "", "Author user name")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newDocShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			docs, err := app.Documents.List(ctx)
			if err != nil {
				return err
			}
			for _, d := range docs {
				if d.ID == args[0] || (len(args[0]) >= 4 && len(d.ID) >= len(args[0]) && d.ID[:len(args[0])] == args[0]) {
					fmt.Println(formatter.StyleHeader.Render(d.Title))
					fmt.Println(d.Content)
					return nil
				}
			}
			return fmt.Errorf("document not found: %q", args[0])
		},
	}
}
