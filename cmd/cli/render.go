package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/sevigo/branchsync/internal/core"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printSyncResult(w io.Writer, res *core.SyncResult) {
	switch res.Action {
	case core.ActionCloned:
		successColor.Fprintf(w, "cloned %s", res.Clone.Branch)
		fmt.Fprintf(w, " into %s\n", res.Clone.Dir)
	case core.ActionAligned:
		printReport(w, res.Report)
	}
}

func printReport(w io.Writer, rep *core.AlignmentReport) {
	titleColor.Fprintf(w, "%s", rep.Dir)
	dimColor.Fprintf(w, " (%s)\n", rep.Branch)

	for _, s := range rep.Steps {
		printStepBadge(w, s)
		fmt.Fprintf(w, " %-16s", s.Step)
		switch {
		case s.Failed():
			errorColor.Fprintf(w, " %s", firstLine(s.ErrorText()))
		case s.Note != "":
			dimColor.Fprintf(w, " %s", s.Note)
		}
		fmt.Fprintln(w)
	}

	switch {
	case rep.Failed():
		errorColor.Fprintln(w, "pull failed, working copy may be behind origin")
	case rep.Updated():
		successColor.Fprintf(w, "updated %s..%s\n", short(rep.HeadBefore), short(rep.HeadAfter))
	default:
		dimColor.Fprintln(w, "already up to date")
	}
}

func printStepBadge(w io.Writer, s core.StepResult) {
	if s.Failed() {
		if s.Step == core.StepPull {
			errorColor.Fprint(w, "  FAIL")
			return
		}
		warnColor.Fprint(w, "  WARN")
		return
	}
	successColor.Fprint(w, "    OK")
}

func printOutcome(w io.Writer, outcome core.SyncOutcome) {
	names := make([]string, 0, len(outcome))
	for name := range outcome {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "BRANCH\tACTION\tSTATUS\tDIRECTORY")
	for _, name := range names {
		r := outcome[name]
		action, status := "-", "ok"
		switch {
		case r.Err != nil:
			status = "error: " + firstLine(r.Err.Error())
		case r.Result != nil:
			action = string(r.Result.Action)
			if r.Result.Report != nil && r.Result.Report.Failed() {
				status = "pull failed"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, action, status, r.Dir)
	}
	_ = tw.Flush()
}

func printPruneOutcome(w io.Writer, outcome core.PruneOutcome) {
	dirs := make([]string, 0, len(outcome))
	for dir := range outcome {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		r := outcome[dir]
		printStepBadge(w, r.Step)
		fmt.Fprintf(w, " %s", dir)
		if r.Step.Failed() {
			warnColor.Fprintf(w, " %s", firstLine(r.Step.ErrorText()))
		}
		fmt.Fprintln(w)
	}
}

func printRemotes(w io.Writer, remotes core.RemoteMap) {
	names := make([]string, 0, len(remotes))
	for name := range remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, name := range names {
		for _, method := range []string{core.MethodFetch, core.MethodPush} {
			if url, ok := remotes[name][method]; ok {
				fmt.Fprintf(tw, "%s\t%s\t(%s)\n", name, url, method)
			}
		}
	}
	_ = tw.Flush()
}

func printCommits(w io.Writer, commits []core.Commit) {
	for _, c := range commits {
		dimColor.Fprintf(w, "%s ", c.Date.Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "%-28s %s\n", c.Committer, c.Subject)
	}
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func short(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
