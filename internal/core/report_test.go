package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchSet(t *testing.T) {
	s := NewBranchSet("master", "B8", "", "B1", "master")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("B1"))
	assert.False(t, s.Has("b1"), "matching is case-sensitive")
	assert.Equal(t, []string{"B1", "B8", "master"}, s.Sorted())
}

func TestAlignmentReport(t *testing.T) {
	rep := &AlignmentReport{
		Steps: []StepResult{
			{Step: StepReset, Status: StatusFailed, Err: errors.New("boom")},
			{Step: StepPull, Status: StatusOK},
		},
		HeadBefore: "abc",
		HeadAfter:  "abc",
	}

	assert.False(t, rep.Failed(), "only a pull failure fails the report")
	assert.False(t, rep.Updated())
	assert.Equal(t, []StepName{StepReset}, rep.FailedSteps())

	_, found := rep.Step(StepCompact)
	assert.False(t, found)
}

func TestStepResult_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(StepResult{Step: StepFetch, Status: StatusFailed, ExitCode: 128, Err: errors.New("no route")})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "fetch", got["step"])
	assert.Equal(t, "failed", got["status"])
	assert.Equal(t, "no route", got["error"])
}

func TestSyncOutcome_Failed(t *testing.T) {
	pullErr := errors.New("pull failed")
	o := SyncOutcome{
		"ok":     {Branch: "ok", Result: &SyncResult{Action: ActionCloned, Clone: &CloneResult{Dir: "/x/ok"}}},
		"broken": {Branch: "broken", Err: errors.New("clone failed")},
		"stale":  {Branch: "stale", Result: &SyncResult{Action: ActionAligned, Report: &AlignmentReport{PullErr: pullErr}}},
	}

	assert.ElementsMatch(t, []string{"broken", "stale"}, o.Failed())
	assert.Equal(t, "/x/ok", o["ok"].Result.Dir())

	data, err := json.Marshal(o["broken"])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"error":"clone failed"`)
}
