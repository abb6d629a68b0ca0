package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/branchsync/internal/app"
)

var alignBranch string

var alignCmd = &cobra.Command{
	Use:   "align [dir]",
	Short: "Align an existing working copy with its origin branch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			rep, err := a.RepoMgr.Align(ctx, args[0], alignBranch)
			if err != nil {
				return err
			}

			if outputJSON {
				if err := printJSON(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), rep)
			}

			if rep.Failed() {
				return fmt.Errorf("unable to pull %s: %w", rep.Branch, rep.PullErr)
			}
			return nil
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	alignCmd.Flags().StringVarP(&alignBranch, "branch", "b", "", "Branch to pull (defaults to default_branch)")
	rootCmd.AddCommand(alignCmd)
}
