package repomanager

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/sevigo/branchsync/internal/config"
	"github.com/sevigo/branchsync/internal/core"
	"github.com/sevigo/branchsync/internal/gitutil"
)

// manager implements the core.RepoManager interface.
type manager struct {
	cfg    *config.Config
	runner gitutil.Runner
	fs     afero.Fs
	logger *slog.Logger
	// headOf reads the HEAD commit of a working copy, "" when unknown.
	headOf  func(dir string) string
	repoMux sync.Map
}

// New creates a new RepoManager. A nil cfg uses config.Default, a nil fs the
// OS filesystem and a nil logger slog.Default.
func New(cfg *config.Config, runner gitutil.Runner, fs afero.Fs, logger *slog.Logger) core.RepoManager {
	if cfg == nil {
		cfg = config.Default()
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.Default()
	}
	m := &manager{
		cfg:    cfg,
		runner: runner,
		fs:     fs,
		logger: logger,
	}
	m.headOf = m.readHead
	return m
}

// lockDir serializes operations on one working copy. Different directories
// never block each other.
func (m *manager) lockDir(dir string) func() {
	val, _ := m.repoMux.LoadOrStore(dir, &sync.Mutex{})
	mux := val.(*sync.Mutex) //nolint:forcetypeassert // only *sync.Mutex is stored
	mux.Lock()
	return mux.Unlock
}

// Sync clones branch of remoteURL into targetDir when it does not exist yet,
// otherwise validates and aligns the existing working copy.
func (m *manager) Sync(ctx context.Context, remoteURL, branch, targetDir string) (*core.SyncResult, error) {
	if remoteURL == "" {
		return nil, missingArg("remote url")
	}
	if targetDir == "" {
		return nil, missingArg("target directory")
	}
	if branch == "" {
		branch = m.cfg.DefaultBranch
	}
	remoteURL = m.resolveOrigin(remoteURL)

	dir, err := filepath.Abs(targetDir)
	if err != nil {
		return nil, fmt.Errorf("resolve target %s: %w", targetDir, err)
	}

	unlock := m.lockDir(dir)
	defer unlock()

	exists, err := afero.Exists(m.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("check target %s: %w", dir, err)
	}
	if !exists {
		return m.clone(ctx, remoteURL, branch, dir)
	}

	m.logger.InfoContext(ctx, "checking if directory contains a valid git repo", "dir", dir)
	if err := m.validate(ctx, dir); err != nil {
		return nil, &InvalidRepositoryError{Dir: dir, Err: err}
	}

	return &core.SyncResult{
		Action: core.ActionAligned,
		Report: m.align(ctx, dir, branch),
	}, nil
}

func (m *manager) clone(ctx context.Context, remoteURL, branch, dir string) (*core.SyncResult, error) {
	parent := filepath.Dir(dir)
	ok, err := afero.DirExists(m.fs, parent)
	if err != nil {
		return nil, fmt.Errorf("check parent %s: %w", parent, err)
	}
	if !ok {
		return nil, &MissingParentError{Dir: dir, Parent: parent}
	}

	url := gitutil.RedactURL(remoteURL)
	m.logger.InfoContext(ctx, "cloning branch", "branch", branch, "url", url, "dir", dir)

	res, err := m.runner.Run(ctx, parent, []string{"clone", "-b", branch, remoteURL, dir})
	if err != nil {
		m.cleanupFailedClone(dir)
		return nil, fmt.Errorf("clone branch %s into %s: %w", branch, dir, err)
	}

	return &core.SyncResult{
		Action: core.ActionCloned,
		Clone: &core.CloneResult{
			Dir:    dir,
			Branch: branch,
			URL:    url,
			Stdout: res.Stdout,
			Stderr: res.Stderr,
		},
	}, nil
}

// cleanupFailedClone removes dir only when the failed clone left nothing in it
// but an empty .git. Any other content may belong to a process that created
// dir after the existence check, so it is left alone.
func (m *manager) cleanupFailedClone(dir string) {
	entries, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		return
	}

	switch {
	case len(entries) == 0:
	case len(entries) == 1 && entries[0].IsDir() && entries[0].Name() == ".git":
		empty, err := afero.IsEmpty(m.fs, filepath.Join(dir, ".git"))
		if err != nil || !empty {
			m.logger.Warn("keeping directory after failed clone", "dir", dir)
			return
		}
	default:
		m.logger.Warn("keeping directory after failed clone", "dir", dir, "entries", len(entries))
		return
	}

	if err := m.fs.RemoveAll(dir); err != nil {
		m.logger.Warn("cleanup after failed clone failed", "dir", dir, "error", err)
	}
}

// resolveOrigin turns a relative origin that exists on disk into an absolute
// path. Branch discovery runs in the working directory but cloning runs in the
// target's parent, and both must read the same repository. URLs, scp-style
// remotes and paths that do not exist locally are returned unchanged.
func (m *manager) resolveOrigin(origin string) string {
	if strings.Contains(origin, "://") || filepath.IsAbs(origin) {
		return origin
	}
	abs, err := filepath.Abs(origin)
	if err != nil {
		return origin
	}
	if ok, _ := afero.Exists(m.fs, abs); !ok {
		return origin
	}
	return abs
}

// Align runs the alignment pipeline on an existing, valid working copy.
func (m *manager) Align(ctx context.Context, dir, branch string) (*core.AlignmentReport, error) {
	if dir == "" {
		return nil, missingArg("directory")
	}
	if branch == "" {
		branch = m.cfg.DefaultBranch
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory %s: %w", dir, err)
	}

	unlock := m.lockDir(abs)
	defer unlock()

	if err := m.validate(ctx, abs); err != nil {
		return nil, &InvalidRepositoryError{Dir: abs, Err: err}
	}
	return m.align(ctx, abs, branch), nil
}
