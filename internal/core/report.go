package core

import (
	"encoding/json"
	"time"
)

// StepName identifies one stage of the alignment pipeline.
type StepName string

const (
	StepRemoveLock     StepName = "remove-lock"
	StepReset          StepName = "reset"
	StepRecoverDeleted StepName = "recover-deleted"
	StepCleanUntracked StepName = "clean-untracked"
	StepPruneOrigin    StepName = "prune-origin"
	StepFetch          StepName = "fetch"
	StepPull           StepName = "pull"
	StepCompact        StepName = "compact"
)

// PipelineSteps lists the alignment stages in execution order.
var PipelineSteps = []StepName{
	StepRemoveLock,
	StepReset,
	StepRecoverDeleted,
	StepCleanUntracked,
	StepPruneOrigin,
	StepFetch,
	StepPull,
	StepCompact,
}

// StepStatus is the outcome tag of a StepResult.
type StepStatus string

const (
	StatusOK     StepStatus = "ok"
	StatusFailed StepStatus = "failed"
)

// StepResult records what a single pipeline step did. A failed step still
// produces a StepResult; the failure lives in Err.
type StepResult struct {
	Step     StepName      `json:"step"`
	Status   StepStatus    `json:"status"`
	Stdout   string        `json:"stdout,omitempty"`
	Stderr   string        `json:"stderr,omitempty"`
	ExitCode int           `json:"exit_code"`
	Note     string        `json:"note,omitempty"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the step ended in an error.
func (s StepResult) Failed() bool {
	return s.Status == StatusFailed
}

// ErrorText returns the failure message, or "" for a successful step.
func (s StepResult) ErrorText() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// MarshalJSON includes the error text, which Err itself cannot carry.
func (s StepResult) MarshalJSON() ([]byte, error) {
	type plain StepResult
	return json.Marshal(struct {
		plain
		Error string `json:"error,omitempty"`
	}{plain(s), s.ErrorText()})
}

// AlignmentReport is the step-by-step record of one alignment run.
type AlignmentReport struct {
	Dir        string        `json:"dir"`
	Branch     string        `json:"branch"`
	Steps      []StepResult  `json:"steps"`
	PullErr    error         `json:"-"`
	HeadBefore string        `json:"head_before,omitempty"`
	HeadAfter  string        `json:"head_after,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Step returns the result recorded for name.
func (r *AlignmentReport) Step(name StepName) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// Failed reports whether the pull, the only consequential step, failed.
func (r *AlignmentReport) Failed() bool {
	return r.PullErr != nil
}

// Updated reports whether HEAD moved during alignment.
func (r *AlignmentReport) Updated() bool {
	return r.HeadBefore != "" && r.HeadAfter != "" && r.HeadBefore != r.HeadAfter
}

// FailedSteps returns the names of every step that failed.
func (r *AlignmentReport) FailedSteps() []StepName {
	var names []StepName
	for _, s := range r.Steps {
		if s.Failed() {
			names = append(names, s.Step)
		}
	}
	return names
}

// CloneResult describes a fresh clone of a branch.
type CloneResult struct {
	Dir    string `json:"dir"`
	Branch string `json:"branch"`
	URL    string `json:"url"`
	Stdout string `json:"stdout,omitempty"`
	Stderr string `json:"stderr,omitempty"`
}
