package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Bulk-import submissions from a CSV or XLSX file",
		Long: "Bulk-import submissions from a CSV or XLSX file. Rows are validated " +
			"independently: a batch can partially succeed. Unknown assignees are " +
			"created as member accounts on their row's team.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %s, skipped %s, failed %s\n",
				formatter.StyleGreen.Render(fmt.Sprintf("%d", result.SuccessCount)),
				formatter.StyleYellow.Render(fmt.Sprintf("%d duplicate(s)", result.DuplicateCount)),
				formatter.StyleRed.Render(fmt.Sprintf("%d", result.ErrorCount)))
			if len(result.Errors) > 0 {
				fmt.Println(formatter.StyleDim.Render(strings.Repeat("─", 40)))
				for _, msg := range result.Errors {
					fmt.Println(formatter.StyleRed.Render(msg))
				}
			}
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export submissions to CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			switch strings.ToLower(format) {
			case "csv":
				err = app.Import.ExportCSV(ctx, f)
			case "xlsx":
				err = app.Import.ExportXLSX(ctx, f)
			default:
				return fmt.Errorf("unsupported export format %q (csv or xlsx)", format)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Exported submissions to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format (csv or xlsx)")
	cmd.Flags().StringVar(&out, "out", "projects_export.csv", "Output file path")

	return cmd
}
