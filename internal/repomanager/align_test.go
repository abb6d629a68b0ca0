package repomanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/branchsync/internal/config"
	"github.com/sevigo/branchsync/internal/core"
	"github.com/sevigo/branchsync/internal/gitutil"
	"github.com/sevigo/branchsync/internal/logger"
	"github.com/sevigo/branchsync/mocks"
)

const testRepo = "/work/repo"

func newTestManager(t *testing.T, fs afero.Fs) (*manager, *mocks.MockRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	m := &manager{
		cfg:    config.Default(),
		runner: runner,
		fs:     fs,
		logger: logger.Nop(),
		headOf: func(string) string { return "" },
	}
	return m, runner
}

func ok(stdout string) *gitutil.Result {
	return &gitutil.Result{Succeeded: true, Stdout: stdout}
}

func failed(args []string, stderr string) (*gitutil.Result, error) {
	res := &gitutil.Result{ExitCode: 1, Stderr: stderr}
	return res, &gitutil.InvocationError{Args: args, ExitCode: 1, Stderr: stderr}
}

func repoFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testRepo+"/.git", 0o750))
	return fs
}

// expectPipeline registers the seven git invocations of one alignment in order.
// override fails the steps whose subcommand matches a key.
func expectPipeline(runner *mocks.MockRunner, dir, branch string, override map[string]error) {
	calls := [][]string{
		{"reset", "--hard"},
		{"checkout", "--", "."},
		{"clean", "-d", "-f"},
		{"remote", "prune", "origin"},
		{"fetch", "origin"},
		{"pull", "origin", branch},
		{"gc", "--auto"},
	}
	ordered := make([]any, 0, len(calls))
	for _, args := range calls {
		if err, found := override[args[0]]; found && err != nil {
			ordered = append(ordered, runner.EXPECT().Run(gomock.Any(), dir, args).
				Return(&gitutil.Result{ExitCode: 1, Stderr: err.Error()}, err))
			continue
		}
		ordered = append(ordered, runner.EXPECT().Run(gomock.Any(), dir, args).Return(ok(""), nil))
	}
	gomock.InOrder(ordered...)
}

func TestAlign_RunsEveryStepInOrder(t *testing.T) {
	m, runner := newTestManager(t, repoFs(t))
	expectPipeline(runner, testRepo, "master", nil)

	rep := m.align(context.Background(), testRepo, "master")

	require.Len(t, rep.Steps, len(core.PipelineSteps))
	for i, want := range core.PipelineSteps {
		assert.Equal(t, want, rep.Steps[i].Step)
		assert.Equal(t, core.StatusOK, rep.Steps[i].Status, "step %s", want)
	}
	lock, found := rep.Step(core.StepRemoveLock)
	require.True(t, found)
	assert.Equal(t, noLockNote, lock.Note)
	assert.NoError(t, rep.PullErr)
	assert.False(t, rep.Failed())
}

func TestAlign_PullFailureIsRecorded(t *testing.T) {
	m, runner := newTestManager(t, repoFs(t))
	pullErr := &gitutil.InvocationError{Args: []string{"pull", "origin", "dev"}, ExitCode: 1, Stderr: "conflict"}
	expectPipeline(runner, testRepo, "dev", map[string]error{"pull": pullErr})

	rep := m.align(context.Background(), testRepo, "dev")

	require.Error(t, rep.PullErr)
	assert.True(t, errors.Is(rep.PullErr, gitutil.ErrInvocation))
	assert.True(t, rep.Failed())
	assert.Equal(t, []core.StepName{core.StepPull}, rep.FailedSteps())

	compact, found := rep.Step(core.StepCompact)
	require.True(t, found)
	assert.Equal(t, core.StatusOK, compact.Status, "compaction runs after a failed pull")
}

func TestAlign_EarlyFailuresDoNotAbort(t *testing.T) {
	m, runner := newTestManager(t, repoFs(t))
	expectPipeline(runner, testRepo, "master", map[string]error{
		"reset":  errors.New("reset broke"),
		"remote": errors.New("no such remote"),
	})

	rep := m.align(context.Background(), testRepo, "master")

	require.Len(t, rep.Steps, len(core.PipelineSteps))
	assert.Equal(t, []core.StepName{core.StepReset, core.StepPruneOrigin}, rep.FailedSteps())
	assert.NoError(t, rep.PullErr)
	assert.False(t, rep.Failed())
}

func TestAlign_RemovesStaleLock(t *testing.T) {
	fs := repoFs(t)
	lock := testRepo + "/.git/index.lock"
	require.NoError(t, afero.WriteFile(fs, lock, nil, 0o600))

	m, runner := newTestManager(t, fs)
	expectPipeline(runner, testRepo, "master", nil)

	rep := m.align(context.Background(), testRepo, "master")

	exists, err := afero.Exists(fs, lock)
	require.NoError(t, err)
	assert.False(t, exists)

	step, _ := rep.Step(core.StepRemoveLock)
	assert.Equal(t, core.StatusOK, step.Status)
	assert.Equal(t, "removed "+lock, step.Note)
}

func TestAlign_RecordsHeadMovement(t *testing.T) {
	m, runner := newTestManager(t, repoFs(t))
	heads := []string{"aaa", "bbb"}
	m.headOf = func(string) string {
		h := heads[0]
		heads = heads[1:]
		return h
	}
	expectPipeline(runner, testRepo, "master", nil)

	rep := m.align(context.Background(), testRepo, "master")

	assert.Equal(t, "aaa", rep.HeadBefore)
	assert.Equal(t, "bbb", rep.HeadAfter)
	assert.True(t, rep.Updated())
}

func TestAlign_FetchIsRetried(t *testing.T) {
	m, runner := newTestManager(t, repoFs(t))
	m.cfg.FetchRetries = 2
	m.cfg.FetchRetryDelay = time.Millisecond

	fetchArgs := []string{"fetch", "origin"}
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), testRepo, []string{"reset", "--hard"}).Return(ok(""), nil),
		runner.EXPECT().Run(gomock.Any(), testRepo, []string{"checkout", "--", "."}).Return(ok(""), nil),
		runner.EXPECT().Run(gomock.Any(), testRepo, []string{"clean", "-d", "-f"}).Return(ok(""), nil),
		runner.EXPECT().Run(gomock.Any(), testRepo, []string{"remote", "prune", "origin"}).Return(ok(""), nil),
		runner.EXPECT().Run(gomock.Any(), testRepo, fetchArgs).Return(failed(fetchArgs, "timeout")),
		runner.EXPECT().Run(gomock.Any(), testRepo, fetchArgs).Return(ok(""), nil),
		runner.EXPECT().Run(gomock.Any(), testRepo, []string{"pull", "origin", "master"}).Return(ok(""), nil),
		runner.EXPECT().Run(gomock.Any(), testRepo, []string{"gc", "--auto"}).Return(ok(""), nil),
	)

	rep := m.align(context.Background(), testRepo, "master")

	fetch, _ := rep.Step(core.StepFetch)
	assert.Equal(t, core.StatusOK, fetch.Status)
	assert.Empty(t, rep.FailedSteps())
}
