package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizbank/internal/config"
	"quizbank/internal/vcs"
)

func (a *app) newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold .quizbank/config.yml at the git root or working directory",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			root := discoverGitRoot(cmd.Context(), wd)
			if root == "" {
				root = wd
			}
			path := config.ConfigPath(root)
			if err := config.Scaffold(path); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Wrote %s\n", path)
			return nil
		},
	}
}

// discoverGitRoot returns the git root or empty when not found.
var discoverGitRoot = func(ctx context.Context, startDir string) string {
	root, err := vcs.DiscoverRepoRoot(ctx, startDir)
	if err != nil {
		return ""
	}
	return root
}
