package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/branchsync/internal/app"
	"github.com/sevigo/branchsync/internal/core"
)

var (
	bsyncBranches []string
	bsyncPrefix   string
)

var bsyncCmd = &cobra.Command{
	Use:   "bsync [origin] [target]",
	Short: "Sync many branches of origin into sibling directories under target",
	Long: `Sync branches of origin into <target>/<prefix><branch>, in parallel. Without
--branches every branch published by origin is synced. A failing branch never
stops the others; the command exits non-zero when any branch failed.

Examples:
  branchsync bsync https://github.com/owner/repo.git ./branches
  branchsync bsync --branches master,develop --prefix repo- https://github.com/owner/repo.git ./`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var branches []string
		if cmd.Flags().Changed("branches") {
			branches = bsyncBranches
			if branches == nil {
				branches = []string{}
			}
		}

		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			outcome, err := a.RepoMgr.SyncBranches(ctx, args[0], args[1], branches, bsyncPrefix)
			if err != nil {
				return err
			}

			if outputJSON {
				if err := printJSON(cmd.OutOrStdout(), outcome); err != nil {
					return err
				}
			} else {
				printOutcome(cmd.OutOrStdout(), outcome)
			}
			return outcomeError(outcome)
		})
	},
}

func outcomeError(outcome core.SyncOutcome) error {
	failed := outcome.Failed()
	if len(failed) == 0 {
		return nil
	}
	sort.Strings(failed)
	return fmt.Errorf("%d of %d branches failed: %s", len(failed), len(outcome), strings.Join(failed, ", "))
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	bsyncCmd.Flags().StringSliceVar(&bsyncBranches, "branches", nil, "Comma separated branches to sync (default: all branches on origin)")
	bsyncCmd.Flags().StringVar(&bsyncPrefix, "prefix", "", "Prefix of each branch directory name")
	rootCmd.AddCommand(bsyncCmd)
}
