package gitutil

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/sevigo/branchsync/internal/core"
)

// LogFieldSeparator delimits fields of a log record. The ASCII unit separator
// does not occur in committer addresses, dates or subjects.
const LogFieldSeparator = "\x1f"

// LogFormat is the --format value understood by ParseLog: committer email,
// strict ISO 8601 committer date, subject.
const LogFormat = "%ce%x1f%cI%x1f%s"

const headsPrefix = "refs/heads/"

var newlineRegexp = regexp.MustCompile(`\r\n|\r|\n`)

// splitLines splits text on any newline convention.
func splitLines(text string) []string {
	return newlineRegexp.Split(text, -1)
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// ParseBranchListing parses `git ls-remote --heads` output. Lines that are not
// "<hash>\t<ref>" are skipped with a warning.
func ParseBranchListing(text string, logger *slog.Logger) core.BranchSet {
	logger = orDefault(logger)
	branches := core.NewBranchSet()

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			logger.Warn("skipping invalid line from ls-remote", "line", line)
			continue
		}
		branches.Add(strings.TrimPrefix(strings.TrimSpace(parts[1]), headsPrefix))
	}
	return branches
}

// ParseCurrentBranch returns the branch marked with "*" in `git branch` output.
// Non-word characters are trimmed only at the ends of the name, never inside
// it, so hierarchical names such as "feature/x" or "release-1.2" come back
// intact instead of being collapsed to "featurex".
func ParseCurrentBranch(text string) (string, error) {
	for _, line := range splitLines(text) {
		if !strings.HasPrefix(line, "*") {
			continue
		}
		name := strings.TrimFunc(strings.TrimPrefix(line, "*"), isNonWord)
		if name != "" {
			return name, nil
		}
	}
	return "", &ParseError{Command: "branch", Reason: "no current branch marker"}
}

func isNonWord(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}

// ParseMergedBranches parses `git branch --merged` output in listing order.
func ParseMergedBranches(text string) []string {
	var names []string
	for _, line := range splitLines(text) {
		name := strings.TrimSpace(line)
		// "*" marks the current branch, "+" a branch checked out in another worktree.
		name = strings.TrimPrefix(name, "*")
		name = strings.TrimPrefix(name, "+")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ParseRemotes parses `git remote -v` output ("<name>\t<url> (<method>)").
func ParseRemotes(text string, logger *slog.Logger) core.RemoteMap {
	logger = orDefault(logger)
	remotes := core.RemoteMap{}

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			logger.Warn("unable to parse remote line", "line", line)
			continue
		}

		rest := strings.TrimSpace(parts[1])
		open := strings.LastIndex(rest, " (")
		if open <= 0 || !strings.HasSuffix(rest, ")") {
			logger.Warn("unable to parse remote line", "line", line)
			continue
		}
		method := rest[open+2 : len(rest)-1]
		if method == "" {
			logger.Warn("unable to parse remote line", "line", line)
			continue
		}
		remotes.Set(parts[0], method, rest[:open])
	}
	return remotes
}

// ParseLog parses `git log --format=LogFormat` output.
func ParseLog(text string, logger *slog.Logger) []core.Commit {
	logger = orDefault(logger)
	var commits []core.Commit

	for _, line := range splitLines(text) {
		if line == "" {
			continue
		}
		fields := strings.Split(line, LogFieldSeparator)
		if len(fields) != 3 {
			logger.Warn("skipping malformed log record", "line", line)
			continue
		}
		date, err := time.Parse(time.RFC3339, fields[1])
		if err != nil {
			logger.Warn("skipping log record with invalid date", "line", line, "error", err)
			continue
		}
		commits = append(commits, core.Commit{
			Committer: fields[0],
			Date:      date,
			Subject:   fields[2],
		})
	}
	return commits
}
