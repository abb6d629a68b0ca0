package repomanager

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sevigo/branchsync/internal/core"
	"github.com/sevigo/branchsync/internal/gitutil"
)

// validate checks dir with `git log -1`. It succeeds only for a working copy
// with at least one commit.
func (m *manager) validate(ctx context.Context, dir string) error {
	_, err := m.runner.Run(ctx, dir, []string{"log", "-1"})
	return err
}

func (m *manager) IsValid(ctx context.Context, dir string) bool {
	if dir == "" {
		return false
	}
	return m.validate(ctx, dir) == nil
}

// Branches lists the branch heads published by the repository at url.
func (m *manager) Branches(ctx context.Context, url string) (core.BranchSet, error) {
	if url == "" {
		return nil, missingArg("url")
	}
	res, err := m.runner.Run(ctx, ".", []string{"ls-remote", "--heads", url})
	if err != nil {
		return nil, fmt.Errorf("list branches of %s: %w", gitutil.RedactURL(url), err)
	}
	return gitutil.ParseBranchListing(res.Stdout, m.logger), nil
}

func (m *manager) CurrentBranch(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		return "", missingArg("directory")
	}
	res, err := m.runner.Run(ctx, dir, []string{"branch"})
	if err != nil {
		return "", fmt.Errorf("read current branch of %s: %w", dir, err)
	}
	name, err := gitutil.ParseCurrentBranch(res.Stdout)
	if err != nil {
		return "", fmt.Errorf("read current branch of %s: %w", dir, err)
	}
	return name, nil
}

// MergedBranches lists local and remote-tracking branches already merged
// into branch.
func (m *manager) MergedBranches(ctx context.Context, dir, branch string) ([]string, error) {
	if dir == "" {
		return nil, missingArg("directory")
	}
	if branch == "" {
		branch = m.cfg.DefaultBranch
	}
	res, err := m.runner.Run(ctx, dir, []string{"branch", "-a", "--merged", branch})
	if err != nil {
		return nil, fmt.Errorf("list branches merged into %s: %w", branch, err)
	}
	return gitutil.ParseMergedBranches(res.Stdout), nil
}

func (m *manager) Remotes(ctx context.Context, dir string) (core.RemoteMap, error) {
	if dir == "" {
		return nil, missingArg("directory")
	}
	res, err := m.runner.Run(ctx, dir, []string{"remote", "-v"})
	if err != nil {
		return nil, fmt.Errorf("list remotes of %s: %w", dir, err)
	}
	return gitutil.ParseRemotes(res.Stdout, m.logger), nil
}

// Log returns the commits touching dir. Every opts entry becomes a
// `--key=value` flag; keys are passed in sorted order so the command line is
// stable.
func (m *manager) Log(ctx context.Context, dir string, opts map[string]string) ([]core.Commit, error) {
	if dir == "" {
		return nil, missingArg("directory")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory %s: %w", dir, err)
	}

	res, err := m.runner.Run(ctx, abs, logArgs(abs, opts))
	if err != nil {
		return nil, fmt.Errorf("read log of %s: %w", abs, err)
	}
	return gitutil.ParseLog(res.Stdout, m.logger), nil
}

func logArgs(dir string, opts map[string]string) []string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)+3)
	args = append(args, "log")
	for _, k := range keys {
		args = append(args, fmt.Sprintf("--%s=%s", k, opts[k]))
	}
	return append(args, "--format="+gitutil.LogFormat, dir)
}
