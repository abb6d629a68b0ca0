package repomanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/branchsync/internal/core"
	"github.com/sevigo/branchsync/internal/gitutil"
)

func TestBranches(t *testing.T) {
	m, runner := newTestManager(t, nil)
	listing := "1111\trefs/heads/B1\n2222\trefs/heads/B8\n3333\trefs/heads/MyBranch\n4444\trefs/heads/master\n"
	runner.EXPECT().Run(gomock.Any(), ".", []string{"ls-remote", "--heads", testURL}).Return(ok(listing), nil)

	branches, err := m.Branches(context.Background(), testURL)
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "B8", "MyBranch", "master"}, branches.Sorted())
}

func TestBranches_Errors(t *testing.T) {
	m, runner := newTestManager(t, nil)

	_, err := m.Branches(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingArgument)

	args := []string{"ls-remote", "--heads", "/nowhere"}
	runner.EXPECT().Run(gomock.Any(), ".", args).Return(failed(args, "fatal: '/nowhere' does not appear to be a git repository"))
	_, err = m.Branches(context.Background(), "/nowhere")
	assert.ErrorIs(t, err, gitutil.ErrInvocation)
}

func TestCurrentBranch(t *testing.T) {
	m, runner := newTestManager(t, nil)
	runner.EXPECT().Run(gomock.Any(), testRepo, []string{"branch"}).Return(ok("  B1\n* MyBranch\n  master\n"), nil)

	name, err := m.CurrentBranch(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Equal(t, "MyBranch", name)
}

func TestCurrentBranch_NoMarker(t *testing.T) {
	m, runner := newTestManager(t, nil)
	runner.EXPECT().Run(gomock.Any(), testRepo, []string{"branch"}).Return(ok(""), nil)

	_, err := m.CurrentBranch(context.Background(), testRepo)
	assert.ErrorIs(t, err, gitutil.ErrParse)
}

func TestMergedBranches(t *testing.T) {
	m, runner := newTestManager(t, nil)
	runner.EXPECT().
		Run(gomock.Any(), testRepo, []string{"branch", "-a", "--merged", "master"}).
		Return(ok("  B1\n* master\n  remotes/origin/master\n"), nil)

	merged, err := m.MergedBranches(context.Background(), testRepo, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "master", "remotes/origin/master"}, merged)
}

func TestRemotes(t *testing.T) {
	m, runner := newTestManager(t, nil)
	out := "origin\t" + testURL + " (fetch)\norigin\t" + testURL + " (push)\n"
	runner.EXPECT().Run(gomock.Any(), testRepo, []string{"remote", "-v"}).Return(ok(out), nil)

	remotes, err := m.Remotes(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Equal(t, core.RemoteMap{
		"origin": {core.MethodFetch: testURL, core.MethodPush: testURL},
	}, remotes)
}

func TestLog_SortsOptions(t *testing.T) {
	m, runner := newTestManager(t, nil)
	want := []string{"log", "--max-count=2", "--since=2024-01-01", "--format=" + gitutil.LogFormat, testRepo}
	out := "dev@example.com\x1f2024-03-01T10:00:00+01:00\x1fsecond\n" +
		"dev@example.com\x1f2024-02-01T10:00:00+01:00\x1ffirst\n"
	runner.EXPECT().Run(gomock.Any(), testRepo, want).Return(ok(out), nil)

	commits, err := m.Log(context.Background(), testRepo, map[string]string{
		"since":     "2024-01-01",
		"max-count": "2",
	})
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "second", commits[0].Subject)
	assert.Equal(t, "dev@example.com", commits[1].Committer)
}

func TestIsValid(t *testing.T) {
	m, runner := newTestManager(t, nil)

	logArgs := []string{"log", "-1"}
	runner.EXPECT().Run(gomock.Any(), "/good", logArgs).Return(ok("commit"), nil)
	runner.EXPECT().Run(gomock.Any(), "/bad", logArgs).Return(failed(logArgs, "fatal"))

	assert.True(t, m.IsValid(context.Background(), "/good"))
	assert.False(t, m.IsValid(context.Background(), "/bad"))
	assert.False(t, m.IsValid(context.Background(), ""))
}
