package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sevigo/branchsync/internal/app"
)

var branchesCmd = &cobra.Command{
	Use:   "branches [url]",
	Short: "List the branches published by a remote repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			branches, err := a.RepoMgr.Branches(ctx, args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), branches.Sorted())
			}
			printLines(cmd.OutOrStdout(), branches.Sorted())
			return nil
		})
	},
}

var currentCmd = &cobra.Command{
	Use:   "current [dir]",
	Short: "Print the branch checked out in a working copy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			name, err := a.RepoMgr.CurrentBranch(ctx, args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), map[string]string{"branch": name})
			}
			printLines(cmd.OutOrStdout(), []string{name})
			return nil
		})
	},
}

var mergedCmd = &cobra.Command{
	Use:   "merged [dir] [branch]",
	Short: "List branches already merged into branch (default: default_branch)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var branch string
		if len(args) == 2 {
			branch = args[1]
		}
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			merged, err := a.RepoMgr.MergedBranches(ctx, args[0], branch)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), merged)
			}
			printLines(cmd.OutOrStdout(), merged)
			return nil
		})
	},
}

var remotesCmd = &cobra.Command{
	Use:   "remotes [dir]",
	Short: "List the remotes of a working copy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			remotes, err := a.RepoMgr.Remotes(ctx, args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), remotes)
			}
			printRemotes(cmd.OutOrStdout(), remotes)
			return nil
		})
	},
}

var logOpts map[string]string

var logCmd = &cobra.Command{
	Use:   "log [dir]",
	Short: "Show the commit log of a working copy",
	Long: `Show committer, date and subject of the commits touching dir. Every --opt
key=value pair is passed to git log as --key=value.

Example:
  branchsync log --opt max-count=10 --opt since=2024-01-01 ./repo`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			commits, err := a.RepoMgr.Log(ctx, args[0], logOpts)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), commits)
			}
			printCommits(cmd.OutOrStdout(), commits)
			return nil
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	logCmd.Flags().StringToStringVar(&logOpts, "opt", nil, "git log option as key=value (repeatable)")
	rootCmd.AddCommand(branchesCmd, currentCmd, mergedCmd, remotesCmd, logCmd)
}
