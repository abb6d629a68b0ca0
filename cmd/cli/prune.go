package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sevigo/branchsync/internal/app"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [root]",
	Short: "Prune stale origin references in every working copy under root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			outcome, err := a.RepoMgr.PruneAll(ctx, args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), outcome)
			}
			printPruneOutcome(cmd.OutOrStdout(), outcome)
			return nil
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(pruneCmd)
}
