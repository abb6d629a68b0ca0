package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/branchsync/internal/app"
	"github.com/sevigo/branchsync/internal/wire"
)

var outputJSON bool

var rootCmd = &cobra.Command{
	Use:   "branchsync",
	Short: "branchsync keeps local working copies of git branches in sync with their origin.",
	Long: `branchsync clones branches of a remote repository into local directories and
brings existing working copies back to the state of their origin branch: stale
locks are removed, local changes are discarded, deleted files are restored and
the latest commits are pulled.

Configuration is read from branchsync.yaml and BRANCHSYNC_* environment
variables. Flags take precedence over both.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&outputJSON, "json", false, "Print results as JSON")
	flags.String("git", "", "Path of the git binary")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Int("workers", 0, "Maximum number of branches synced in parallel")

	bindings := map[string]string{
		"git_binary":  "git",
		"log.level":   "log-level",
		"max_workers": "workers",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// runWithApp wires the application and runs fn with a context that is
// canceled on SIGINT or SIGTERM.
func runWithApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app services: %w", err)
	}
	defer cleanup()

	return fn(ctx, a)
}
