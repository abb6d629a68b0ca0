package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/branchsync/internal/app"
)

var syncBranch string

var syncCmd = &cobra.Command{
	Use:   "sync [url] [dir]",
	Short: "Clone a branch into dir, or align the working copy already there",
	Long: `Clone a branch of url into dir when dir does not exist yet. When dir already
holds a working copy it is aligned with origin instead: stale locks are
removed, local changes discarded, deleted files restored and the branch pulled.

Examples:
  branchsync sync https://github.com/owner/repo.git ./repo
  branchsync sync --branch develop https://github.com/owner/repo.git ./repo-develop`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			res, err := a.RepoMgr.Sync(ctx, args[0], syncBranch, args[1])
			if err != nil {
				return err
			}

			if outputJSON {
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			} else {
				printSyncResult(cmd.OutOrStdout(), res)
			}

			if res.Report != nil && res.Report.Failed() {
				return fmt.Errorf("unable to pull %s: %w", res.Report.Branch, res.Report.PullErr)
			}
			return nil
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	syncCmd.Flags().StringVarP(&syncBranch, "branch", "b", "", "Branch to sync (defaults to default_branch)")
	rootCmd.AddCommand(syncCmd)
}
