package git

import (
	"context"
	"fmt"

	"pushit.dev/pushit/internal/config"
)

// DefaultRemote is the remote every push targets
const DefaultRemote = "origin"

// Result is the outcome of one git operation
type Result struct {
	// Success is true when the operation completed
	Success bool
	// Diagnostic is the tool's output, used verbatim in error reports
	Diagnostic string
	// Unavailable is true when git itself could not be run
	Unavailable bool
}

// Operations are the three steps of a push run
type Operations interface {
	// StageAll stages every tracked and untracked change in the worktree
	StageAll(ctx context.Context) Result
	// Commit records the staged changes with the given message
	Commit(ctx context.Context, message string) Result
	// Push sends the branch to DefaultRemote and sets it as upstream
	Push(ctx context.Context, branch string) Result
}

// NewOperations returns the Operations implementation for the backend
func NewOperations(backend config.Backend, dir string) (Operations, error) {
	switch backend {
	case config.BackendGit, "":
		return NewCLIOperations(dir), nil
	case config.BackendGoGit:
		return NewGoGitOperations(dir), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func success(output string) Result {
	return Result{Success: true, Diagnostic: output}
}

func failure(diagnostic string) Result {
	return Result{Diagnostic: diagnostic}
}
