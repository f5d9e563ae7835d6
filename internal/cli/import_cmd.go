package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/devterm/internal/cli/formatter"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Validate a YAML portfolio and store it in the database",
		Long:  "Validate a YAML portfolio and store it in SQLite. Serve it afterwards with --source db.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			snap, err := portfolio.LoadFile(args[0])
			if err != nil {
				return err
			}

			repo, closer, err := app.OpenRepo()
			if err != nil {
				return err
			}
			defer closer.Close()

			source := args[0]
			if abs, err := filepath.Abs(source); err == nil {
				source = abs
			}
			if err := repo.Replace(ctx, snap, source); err != nil {
				return fmt.Errorf("storing portfolio: %w", err)
			}
			at, stored, err := repo.ImportedAt(ctx)
			if err != nil {
				return fmt.Errorf("reading import record: %w", err)
			}

			app.Logger.Info("portfolio imported", zap.String("source", stored), zap.Int("projects", len(snap.Projects)))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportSummary(snap, stored, at))
			return nil
		},
	}
}
