package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor defines the interface for git command execution
type Executor interface {
	// IsRepository reports whether the working directory is inside a git repository
	IsRepository(ctx context.Context) bool

	// DiffCached returns the diff of staged changes
	DiffCached(ctx context.Context) (string, error)

	// StageAll stages all changes in the working tree
	StageAll(ctx context.Context) error

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// Commit executes a git commit with the given message and description
	Commit(ctx context.Context, message, description string, noVerify bool) error
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepository reports whether the working directory is inside a git repository
func (e *DefaultExecutor) IsRepository(ctx context.Context) bool {
	out, err := e.runGit(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// DiffCached returns the diff of staged changes
func (e *DefaultExecutor) DiffCached(ctx context.Context) (string, error) {
	return e.runGit(ctx, "diff", "--cached")
}

// StageAll stages all changes in the working tree
func (e *DefaultExecutor) StageAll(ctx context.Context) error {
	_, err := e.runGit(ctx, "add", "-A")
	return err
}

// CurrentBranch returns the current branch name
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	return e.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// Commit executes a git commit. The description, when non-empty, becomes
// the commit body via a second -m flag.
func (e *DefaultExecutor) Commit(ctx context.Context, message, description string, noVerify bool) error {
	args := []string{"commit", "-m", message}
	if description != "" {
		args = append(args, "-m", description)
	}
	if noVerify {
		args = append(args, "--no-verify")
	}
	_, err := e.runGit(ctx, args...)
	return err
}
