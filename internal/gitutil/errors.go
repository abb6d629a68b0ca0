package gitutil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingDir = errors.New("working directory is required")
	ErrInvocation = errors.New("git command failed")
	ErrParse      = errors.New("unable to parse git output")
)

// InvocationError reports a git process that exited with a non-zero status.
type InvocationError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *InvocationError) Error() string {
	cmd := strings.Join(RedactArgs(e.Args), " ")
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("git %s: exit code %d", cmd, e.ExitCode)
	}
	return fmt.Sprintf("git %s: exit code %d: %s", cmd, e.ExitCode, msg)
}

func (e *InvocationError) Unwrap() error {
	return ErrInvocation
}

// ParseError reports output of a git command that could not be interpreted.
type ParseError struct {
	Command string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q output: %s", e.Command, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
