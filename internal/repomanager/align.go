package repomanager

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/sevigo/branchsync/internal/core"
	"github.com/sevigo/branchsync/internal/gitutil"
)

// stepFunc performs one pipeline step against the working copy of rep.
// It never aborts the pipeline: failures are returned inside the StepResult.
type stepFunc func(m *manager, ctx context.Context, rep *core.AlignmentReport) core.StepResult

type pipelineStep struct {
	name core.StepName
	run  stepFunc
}

// pipeline is the alignment sequence. Each step leaves the copy no worse than
// a fresh clone for the steps after it, so the order must not change.
var pipeline = []pipelineStep{
	{core.StepRemoveLock, (*manager).removeLock},
	{core.StepReset, gitStep("reset", "--hard")},
	{core.StepRecoverDeleted, gitStep("checkout", "--", ".")},
	{core.StepCleanUntracked, gitStep("clean", "-d", "-f")},
	{core.StepPruneOrigin, gitStep("remote", "prune", remoteOrigin)},
	{core.StepFetch, (*manager).fetch},
	{core.StepPull, (*manager).pull},
	{core.StepCompact, gitStep("gc", "--auto")},
}

// align drives the pipeline in order and always returns a report with one
// entry per step. Only a failed pull marks the report as failed.
func (m *manager) align(ctx context.Context, dir, branch string) *core.AlignmentReport {
	start := time.Now()
	rep := &core.AlignmentReport{
		Dir:        dir,
		Branch:     branch,
		Steps:      make([]core.StepResult, 0, len(pipeline)),
		HeadBefore: m.headOf(dir),
	}

	m.logger.InfoContext(ctx, "aligning working copy", "dir", dir, "branch", branch)

	for _, step := range pipeline {
		stepStart := time.Now()
		res := step.run(m, ctx, rep)
		res.Step = step.name
		res.Duration = time.Since(stepStart)

		if step.name == core.StepPull && res.Failed() {
			rep.PullErr = res.Err
		}
		m.logStep(ctx, rep, res)
		rep.Steps = append(rep.Steps, res)
	}

	rep.HeadAfter = m.headOf(dir)
	rep.Duration = time.Since(start)

	m.logger.InfoContext(ctx, "alignment finished",
		"dir", dir,
		"branch", branch,
		"updated", rep.Updated(),
		"failed_steps", len(rep.FailedSteps()),
		"elapsed", rep.Duration,
	)
	return rep
}

func (m *manager) logStep(ctx context.Context, rep *core.AlignmentReport, res core.StepResult) {
	switch {
	case !res.Failed():
		m.logger.DebugContext(ctx, "step finished", "dir", rep.Dir, "step", res.Step, "note", res.Note)
	case res.Step == core.StepPull:
		m.logger.ErrorContext(ctx, "unable to pull", "dir", rep.Dir, "branch", rep.Branch, "error", res.Err)
	default:
		m.logger.WarnContext(ctx, "step failed, continuing", "dir", rep.Dir, "step", res.Step, "error", res.Err)
	}
}

// gitStep builds a step that runs a fixed git command in the working copy.
func gitStep(args ...string) stepFunc {
	return func(m *manager, ctx context.Context, rep *core.AlignmentReport) core.StepResult {
		return m.runGit(ctx, rep.Dir, args...)
	}
}

// runGit runs one git command and folds its outcome into a StepResult.
func (m *manager) runGit(ctx context.Context, dir string, args ...string) core.StepResult {
	return stepResult(m.runner.Run(ctx, dir, args))
}

func stepResult(res *gitutil.Result, err error) core.StepResult {
	sr := core.StepResult{Status: core.StatusOK}
	if res != nil {
		sr.Stdout = res.Stdout
		sr.Stderr = res.Stderr
		sr.ExitCode = res.ExitCode
	}
	if err != nil {
		sr.Status = core.StatusFailed
		sr.Err = err
	}
	return sr
}

func failedStep(err error) core.StepResult {
	return core.StepResult{Status: core.StatusFailed, Err: err}
}

// removeLock deletes a lock file left behind by an interrupted git process.
func (m *manager) removeLock(_ context.Context, rep *core.AlignmentReport) core.StepResult {
	lock := filepath.Join(rep.Dir, m.cfg.LockFile)

	exists, err := afero.Exists(m.fs, lock)
	if err != nil {
		return failedStep(fmt.Errorf("check lock %s: %w", lock, err))
	}
	if !exists {
		return core.StepResult{Status: core.StatusOK, Note: noLockNote}
	}

	m.logger.Warn("removing stale lock", "path", lock)
	if err := m.fs.Remove(lock); err != nil {
		return failedStep(fmt.Errorf("remove lock %s: %w", lock, err))
	}
	return core.StepResult{Status: core.StatusOK, Note: "removed " + lock}
}

func (m *manager) fetch(ctx context.Context, rep *core.AlignmentReport) core.StepResult {
	args := []string{"fetch", remoteOrigin}
	if m.cfg.FetchRetries <= 0 {
		return m.runGit(ctx, rep.Dir, args...)
	}
	return stepResult(gitutil.RunWithRetry(ctx, m.runner, m.logger, rep.Dir, args, m.cfg.FetchRetries, m.cfg.FetchRetryDelay))
}

func (m *manager) pull(ctx context.Context, rep *core.AlignmentReport) core.StepResult {
	return m.runGit(ctx, rep.Dir, "pull", remoteOrigin, rep.Branch)
}
