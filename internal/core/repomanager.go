// Package core defines the data structures and interfaces shared by the
// synchronization engine, the CLI and the application wiring. Everything here
// is transient: values are built for one operation and discarded afterwards.
package core

import (
	"context"
	"encoding/json"
)

// RepoManager is the public surface of the synchronization engine.
//
//go:generate mockgen -destination=../../mocks/mock_repo_manager.go -package=mocks . RepoManager
type RepoManager interface {
	// Sync clones branch of remoteURL into targetDir, or aligns the existing
	// working copy found there.
	Sync(ctx context.Context, remoteURL, branch, targetDir string) (*SyncResult, error)
	// Align runs the recovery and update pipeline on an existing working copy.
	Align(ctx context.Context, dir, branch string) (*AlignmentReport, error)
	// SyncBranches syncs every branch into <target>/<prefix><branch>. A nil
	// branch list syncs all branches found on origin.
	SyncBranches(ctx context.Context, origin, target string, branches []string, prefix string) (SyncOutcome, error)
	// PruneAll prunes stale origin references in every directory under root.
	PruneAll(ctx context.Context, root string) (PruneOutcome, error)

	Branches(ctx context.Context, url string) (BranchSet, error)
	CurrentBranch(ctx context.Context, dir string) (string, error)
	MergedBranches(ctx context.Context, dir, branch string) ([]string, error)
	Remotes(ctx context.Context, dir string) (RemoteMap, error)
	Log(ctx context.Context, dir string, opts map[string]string) ([]Commit, error)
	IsValid(ctx context.Context, dir string) bool
}

// SyncAction tags which variant a SyncResult carries.
type SyncAction string

const (
	ActionCloned  SyncAction = "cloned"
	ActionAligned SyncAction = "aligned"
)

// SyncResult is either a CloneResult or an AlignmentReport, selected by Action.
type SyncResult struct {
	Action SyncAction       `json:"action"`
	Clone  *CloneResult     `json:"clone,omitempty"`
	Report *AlignmentReport `json:"report,omitempty"`
}

// Dir returns the working copy the result refers to.
func (r *SyncResult) Dir() string {
	switch {
	case r == nil:
		return ""
	case r.Clone != nil:
		return r.Clone.Dir
	case r.Report != nil:
		return r.Report.Dir
	}
	return ""
}

// BranchResult is one branch's entry of a bulk sync.
type BranchResult struct {
	Branch string      `json:"branch"`
	Dir    string      `json:"dir"`
	Result *SyncResult `json:"result,omitempty"`
	Err    error       `json:"-"`
}

func (r BranchResult) MarshalJSON() ([]byte, error) {
	type plain BranchResult
	out := struct {
		plain
		Error string `json:"error,omitempty"`
	}{plain: plain(r)}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// SyncOutcome maps branch name to its result.
type SyncOutcome map[string]BranchResult

// Failed returns the branches whose sync errored or whose pull failed.
func (o SyncOutcome) Failed() []string {
	var names []string
	for name, r := range o {
		if r.Err != nil || (r.Result != nil && r.Result.Report != nil && r.Result.Report.Failed()) {
			names = append(names, name)
		}
	}
	return names
}

// PruneResult is one directory's entry of a bulk prune.
type PruneResult struct {
	Dir  string     `json:"dir"`
	Step StepResult `json:"step"`
}

// PruneOutcome maps directory path to its prune result.
type PruneOutcome map[string]PruneResult
