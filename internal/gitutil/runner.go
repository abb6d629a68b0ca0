// Package gitutil runs the git executable and interprets its textual output.
package gitutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

const defaultBinary = "git"

// Runner executes git with an argument list inside a working directory.
//
//go:generate mockgen -destination=../../mocks/mock_runner.go -package=mocks . Runner
type Runner interface {
	// Run returns the captured result of one git process. A non-zero exit
	// yields both the populated Result and an *InvocationError.
	Run(ctx context.Context, dir string, args []string) (*Result, error)
}

// Result is the captured outcome of one git invocation.
type Result struct {
	Succeeded bool
	ExitCode  int
	Stdout    string
	Stderr    string
}

// Client handles invoking the git binary.
type Client struct {
	Logger *slog.Logger
	Binary string
}

// NewClient returns a new Client instance. An empty binary means "git" on PATH.
func NewClient(logger *slog.Logger, binary string) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if binary == "" {
		binary = defaultBinary
	}
	return &Client{Logger: logger, Binary: binary}
}

// Run spawns git in dir and buffers its output in memory.
func (c *Client) Run(ctx context.Context, dir string, args []string) (*Result, error) {
	if dir == "" {
		return nil, ErrMissingDir
	}

	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch {
	case err == nil:
		res.Succeeded = true
	case ctx.Err() != nil:
		res.ExitCode = -1
		err = fmt.Errorf("git %s: %w", subcommand(args), ctx.Err())
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			err = &InvocationError{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
		} else {
			res.ExitCode = -1
			err = fmt.Errorf("failed to start git %s: %w", subcommand(args), err)
		}
	}

	c.Logger.DebugContext(ctx, "git invocation",
		"args", RedactArgs(args),
		"dir", dir,
		"exit_code", res.ExitCode,
		"elapsed", time.Since(start),
		"error", err,
	)
	return res, err
}

// RunWithRetry retries a failing invocation up to retries more times with
// exponential backoff starting at baseDelay. Context cancellation stops waiting.
func RunWithRetry(ctx context.Context, r Runner, logger *slog.Logger, dir string, args []string, retries int, baseDelay time.Duration) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		res *Result
		err error
	)
	for i := 0; i <= retries; i++ {
		if i > 0 {
			delay := baseDelay * time.Duration(1<<(i-1))
			logger.WarnContext(ctx, "git command failed, retrying",
				"args", RedactArgs(args),
				"attempt", i,
				"max_retries", retries,
				"delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(delay):
			}
		}

		res, err = r.Run(ctx, dir, args)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, ErrMissingDir) {
			return res, err
		}
	}
	return res, err
}

func subcommand(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
