package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizbank/internal/catalog"
)

func (a *app) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the catalog parses and every record is well formed",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.settings("")
			if err != nil {
				return err
			}
			records, err := catalog.Load(settings.CatalogPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Catalog OK: %s (%d questions)\n", settings.CatalogPath, len(records))
			return nil
		},
	}
}
