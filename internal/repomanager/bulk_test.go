package repomanager

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/branchsync/internal/core"
)

func TestSyncBranches_OneEntryPerBranch(t *testing.T) {
	fs := afero.NewMemMapFs()
	m, runner := newTestManager(t, fs)
	m.cfg.MaxWorkers = 2

	for _, b := range []string{"B1", "B8"} {
		runner.EXPECT().
			Run(gomock.Any(), "/work", []string{"clone", "-b", b, testURL, "/work/wc-" + b}).
			Return(ok(""), nil)
	}
	badArgs := []string{"clone", "-b", "gone", testURL, "/work/wc-gone"}
	runner.EXPECT().Run(gomock.Any(), "/work", badArgs).Return(failed(badArgs, "fatal: Remote branch gone not found"))

	outcome, err := m.SyncBranches(context.Background(), testURL, "/work", []string{"B1", "B8", "B1", "gone"}, "wc-")
	require.NoError(t, err)
	require.Len(t, outcome, 3)

	for _, b := range []string{"B1", "B8"} {
		r := outcome[b]
		assert.NoError(t, r.Err, b)
		assert.Equal(t, "/work/wc-"+b, r.Dir)
		require.NotNil(t, r.Result)
		assert.Equal(t, core.ActionCloned, r.Result.Action)
	}

	gone := outcome["gone"]
	require.Error(t, gone.Err)
	assert.Nil(t, gone.Result)
	assert.Equal(t, []string{"gone"}, outcome.Failed())

	exists, err := afero.DirExists(fs, "/work")
	require.NoError(t, err)
	assert.True(t, exists, "target root is created")
}

func TestSyncBranches_DiscoversBranches(t *testing.T) {
	m, runner := newTestManager(t, nil)

	runner.EXPECT().
		Run(gomock.Any(), ".", []string{"ls-remote", "--heads", testURL}).
		Return(ok("aaa\trefs/heads/master\nbbb\trefs/heads/MyBranch\n"), nil)
	for _, b := range []string{"master", "MyBranch"} {
		runner.EXPECT().
			Run(gomock.Any(), "/work", []string{"clone", "-b", b, testURL, "/work/" + b}).
			Return(ok(""), nil)
	}

	outcome, err := m.SyncBranches(context.Background(), testURL, "/work", nil, "")
	require.NoError(t, err)

	names := make([]string, 0, len(outcome))
	for n := range outcome {
		names = append(names, n)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"MyBranch", "master"}, names)
	assert.Empty(t, outcome.Failed())
}

func TestSyncBranches_EmptyList(t *testing.T) {
	m, _ := newTestManager(t, nil)

	outcome, err := m.SyncBranches(context.Background(), testURL, "/work", []string{}, "")
	require.NoError(t, err)
	assert.Empty(t, outcome)
}

func TestSyncBranches_MissingArguments(t *testing.T) {
	m, _ := newTestManager(t, nil)

	_, err := m.SyncBranches(context.Background(), "", "/work", nil, "")
	assert.ErrorIs(t, err, ErrMissingArgument)

	_, err = m.SyncBranches(context.Background(), testURL, "", nil, "")
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestPruneAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/a", 0o750))
	require.NoError(t, fs.MkdirAll("/work/b", 0o750))
	require.NoError(t, afero.WriteFile(fs, "/work/README", []byte("x"), 0o600))
	m, runner := newTestManager(t, fs)

	args := []string{"remote", "prune", "origin"}
	runner.EXPECT().Run(gomock.Any(), "/work/a", args).Return(ok(""), nil)
	runner.EXPECT().Run(gomock.Any(), "/work/b", args).Return(failed(args, "fatal: not a git repository"))

	outcome, err := m.PruneAll(context.Background(), "/work")
	require.NoError(t, err)
	require.Len(t, outcome, 2)

	assert.Equal(t, core.StatusOK, outcome["/work/a"].Step.Status)
	assert.Equal(t, core.StatusFailed, outcome["/work/b"].Step.Status)
	assert.Equal(t, core.StepPruneOrigin, outcome["/work/b"].Step.Step)
}

func TestPruneAll_MissingRoot(t *testing.T) {
	m, _ := newTestManager(t, nil)

	_, err := m.PruneAll(context.Background(), "/does/not/exist")
	assert.Error(t, err)
}

func TestSyncBranches_ResolvesRelativeOrigin(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	origin := filepath.Join(cwd, "origin")

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(origin, 0o750))
	m, runner := newTestManager(t, fs)

	// Listing runs from "." and clones run in the target, so both must see
	// the same absolute origin.
	runner.EXPECT().
		Run(gomock.Any(), ".", []string{"ls-remote", "--heads", origin}).
		Return(ok("a1b2\trefs/heads/a\nc3d4\trefs/heads/b\n"), nil)
	for _, b := range []string{"a", "b"} {
		runner.EXPECT().
			Run(gomock.Any(), "/work", []string{"clone", "-b", b, origin, "/work/" + b}).
			Return(ok(""), nil)
	}

	outcome, err := m.SyncBranches(context.Background(), "./origin", "/work", nil, "")
	require.NoError(t, err)
	require.Len(t, outcome, 2)
	assert.Empty(t, outcome.Failed())
}
