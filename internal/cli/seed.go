package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quizbank/internal/batch"
	"quizbank/internal/seed"
)

func (a *app) newSeedCommand() *cobra.Command {
	var batchName string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Append a question batch to the catalog",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.settings(batchName)
			if err != nil {
				return err
			}
			records, err := batch.Get(settings.Batch)
			if err != nil {
				return err
			}
			result, err := seed.LoadQuestions(cmd.Context(), seed.Options{
				Path:        settings.CatalogPath,
				Batch:       records,
				LockTimeout: settings.LockTimeout,
				Logger:      a.logger.With(zap.String("batch", settings.Batch)),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Added %d questions to %s (total %d)\n", result.Added, result.Path, result.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&batchName, "batch", "", fmt.Sprintf("Batch to append (default from config, else %q)", batch.Default))
	return cmd
}
