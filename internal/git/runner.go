package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	pusherrors "pushit.dev/pushit/internal/errors"
)

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command and returns its combined stdout and stderr.
// No timeout is applied and the child is not killed when ctx is canceled:
// a terminal interrupt reaches git directly and git decides how to stop.
// ctx is only checked before the command starts.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cmd := exec.Command("git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	out := strings.TrimSpace(output.String())
	if err != nil {
		return out, pusherrors.NewGitCommandError("git", args, out, err)
	}
	return out, nil
}

// CheckAvailable verifies that git can be executed by running git --version
func CheckAvailable(ctx context.Context) error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("%w: %w", pusherrors.ErrToolUnavailable, err)
	}
	if _, err := NewCommandRunner("").Run(ctx, "--version"); err != nil {
		return fmt.Errorf("%w: %w", pusherrors.ErrToolUnavailable, err)
	}
	return nil
}
