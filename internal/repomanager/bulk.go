package repomanager

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/branchsync/internal/core"
	"github.com/sevigo/branchsync/internal/gitutil"
)

// SyncBranches syncs each branch of origin into <target>/<prefix><branch>
// concurrently. Per-branch failures are recorded in that branch's entry and
// never fail the call; the outcome has exactly one entry per distinct branch.
func (m *manager) SyncBranches(ctx context.Context, origin, target string, branches []string, prefix string) (core.SyncOutcome, error) {
	if origin == "" {
		return nil, missingArg("origin")
	}
	if target == "" {
		return nil, missingArg("target")
	}
	origin = m.resolveOrigin(origin)

	if branches == nil {
		m.logger.InfoContext(ctx, "listing branches", "origin", gitutil.RedactURL(origin))
		discovered, err := m.Branches(ctx, origin)
		if err != nil {
			return nil, fmt.Errorf("discover branches of %s: %w", gitutil.RedactURL(origin), err)
		}
		return m.SyncBranches(ctx, origin, target, discovered.Sorted(), prefix)
	}

	root, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolve target %s: %w", target, err)
	}
	if err := m.fs.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("unable to create directory %s: %w", root, err)
	}

	names := core.NewBranchSet(branches...).Sorted()
	results := make([]core.BranchResult, len(names))

	var g errgroup.Group
	g.SetLimit(m.workerLimit())
	for i, name := range names {
		g.Go(func() error {
			results[i] = m.syncBranch(ctx, origin, root, prefix, name)
			return nil // failures live in the branch's own entry
		})
	}
	_ = g.Wait()

	outcome := make(core.SyncOutcome, len(results))
	for _, r := range results {
		outcome[r.Branch] = r
	}
	return outcome, nil
}

func (m *manager) syncBranch(ctx context.Context, origin, root, prefix, branch string) core.BranchResult {
	dir := filepath.Join(root, prefix+branch)
	m.logger.InfoContext(ctx, "syncing branch", "branch", branch, "origin", gitutil.RedactURL(origin), "dir", dir)

	res, err := m.Sync(ctx, origin, branch, dir)
	if err != nil {
		m.logger.ErrorContext(ctx, "branch sync failed", "branch", branch, "dir", dir, "error", err)
	}
	return core.BranchResult{
		Branch: branch,
		Dir:    dir,
		Result: res,
		Err:    err,
	}
}

// PruneAll runs `git remote prune origin` in every directory directly under
// root. Regular files are ignored. Only a failure to list root fails the call.
func (m *manager) PruneAll(ctx context.Context, root string) (core.PruneOutcome, error) {
	if root == "" {
		return nil, missingArg("root directory")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	entries, err := afero.ReadDir(m.fs, abs)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", abs, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(abs, e.Name()))
		}
	}

	m.logger.InfoContext(ctx, "pruning origin references", "root", abs, "dirs", len(dirs))

	results := make([]core.PruneResult, len(dirs))
	var g errgroup.Group
	g.SetLimit(m.workerLimit())
	for i, dir := range dirs {
		g.Go(func() error {
			step := m.runGit(ctx, dir, "remote", "prune", remoteOrigin)
			step.Step = core.StepPruneOrigin
			if step.Failed() {
				m.logger.WarnContext(ctx, "prune failed", "dir", dir, "error", step.Err)
			}
			results[i] = core.PruneResult{Dir: dir, Step: step}
			return nil
		})
	}
	_ = g.Wait()

	outcome := make(core.PruneOutcome, len(results))
	for _, r := range results {
		outcome[r.Dir] = r
	}
	return outcome, nil
}

// workerLimit maps the configured worker count to errgroup's limit, where a
// negative value means unbounded.
func (m *manager) workerLimit() int {
	if m.cfg.MaxWorkers <= 0 {
		return -1
	}
	return m.cfg.MaxWorkers
}
