// Package app holds the wired application components used by the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevigo/branchsync/internal/config"
	"github.com/sevigo/branchsync/internal/core"
	"github.com/sevigo/branchsync/internal/gitutil"
)

// App holds the main application components.
type App struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	RepoMgr core.RepoManager
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, repoMgr core.RepoManager, logger *slog.Logger) *App {
	logger.Debug("initializing branchsync",
		"git_binary", cfg.GitBinary,
		"default_branch", cfg.DefaultBranch,
		"max_workers", cfg.MaxWorkers)

	return &App{
		Cfg:     cfg,
		Logger:  logger,
		RepoMgr: repoMgr,
	}
}

// JobOutcome is the result of one manifest job.
type JobOutcome struct {
	Job     config.ManifestJob `json:"job"`
	Outcome core.SyncOutcome   `json:"outcome,omitempty"`
	Err     error              `json:"-"`
	Error   string             `json:"error,omitempty"`
}

// Apply runs every job of the manifest in order. A job that cannot start
// (for example because its branches cannot be listed) is recorded and the
// remaining jobs still run. The returned error joins the job-level failures.
func (a *App) Apply(ctx context.Context, m *config.Manifest) ([]JobOutcome, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil manifest", config.ErrManifestInvalid)
	}

	start := time.Now()
	outcomes := make([]JobOutcome, 0, len(m.Jobs))
	var errs []error

	for i, job := range m.Jobs {
		if err := ctx.Err(); err != nil {
			return outcomes, errors.Join(append(errs, err)...)
		}

		a.Logger.InfoContext(ctx, "running manifest job",
			"job", i,
			"origin", gitutil.RedactURL(job.Origin),
			"target", job.Target,
			"branches", len(job.Branches))

		res := JobOutcome{Job: job}
		res.Outcome, res.Err = a.RepoMgr.SyncBranches(ctx, job.Origin, job.Target, job.Branches, job.Prefix)
		if res.Err != nil {
			res.Error = res.Err.Error()
			errs = append(errs, fmt.Errorf("job %d (%s): %w", i, job.Target, res.Err))
			a.Logger.ErrorContext(ctx, "manifest job failed", "job", i, "error", res.Err)
		}
		outcomes = append(outcomes, res)
	}

	a.Logger.InfoContext(ctx, "manifest applied", "jobs", len(m.Jobs), "failed", len(errs), "elapsed", time.Since(start))
	return outcomes, errors.Join(errs...)
}
