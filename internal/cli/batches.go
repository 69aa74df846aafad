package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizbank/internal/batch"
)

func (a *app) newBatchesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batches",
		Short: "List the built-in question batches",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range batch.Names() {
				records, err := batch.Get(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == batch.Default {
					marker = " (default)"
				}
				fmt.Fprintf(a.stdout, "%-12s %d questions%s\n", name, len(records), marker)
			}
			return nil
		},
	}
}
