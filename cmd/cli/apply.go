package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/branchsync/internal/app"
	"github.com/sevigo/branchsync/internal/config"
)

var applyCmd = &cobra.Command{
	Use:   "apply [manifest]",
	Short: "Run every bulk sync listed in a YAML manifest",
	Long: `Run the bulk syncs listed in a YAML manifest, one job after another.

Example manifest:
  jobs:
    - origin: https://github.com/owner/repo.git
      target: ./repo
      prefix: repo-
    - origin: https://github.com/owner/docs.git
      target: ./docs
      branches: [master, release]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := config.LoadManifest(args[0])
		if err != nil {
			return err
		}

		return runWithApp(cmd, func(ctx context.Context, a *app.App) error {
			outcomes, applyErr := a.Apply(ctx, manifest)

			if outputJSON {
				if err := printJSON(cmd.OutOrStdout(), outcomes); err != nil {
					return err
				}
			} else {
				for _, o := range outcomes {
					titleColor.Fprintf(cmd.OutOrStdout(), "%s\n", o.Job.Target)
					if o.Err != nil {
						errorColor.Fprintf(cmd.OutOrStdout(), "  %s\n", firstLine(o.Error))
						continue
					}
					printOutcome(cmd.OutOrStdout(), o.Outcome)
				}
			}

			if applyErr != nil {
				return applyErr
			}
			for _, o := range outcomes {
				if err := outcomeError(o.Outcome); err != nil {
					return fmt.Errorf("%s: %w", o.Job.Target, err)
				}
			}
			return nil
		})
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(applyCmd)
}
