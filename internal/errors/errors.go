// Package errors provides sentinel errors and custom error types for pushit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three ways a push run can stop early
var (
	// ErrToolUnavailable indicates that the git executable could not be located or started
	ErrToolUnavailable = errors.New("git is not installed or accessible")

	// ErrOperationFailed indicates that a git operation ran and reported failure
	ErrOperationFailed = errors.New("git operation failed")

	// ErrUserInterrupted indicates that the user canceled the run (Ctrl+C or closed input)
	ErrUserInterrupted = errors.New("interrupted by user")
)

// Kind classifies an OperationError
type Kind int

const (
	// KindOperationFailed is an operation that ran and exited non-zero
	KindOperationFailed Kind = iota
	// KindToolUnavailable is an operation that could not be started at all
	KindToolUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindToolUnavailable:
		return "tool unavailable"
	default:
		return "operation failed"
	}
}

// OperationError represents a failed stage, commit or push
type OperationError struct {
	Operation  string
	Diagnostic string
	Kind       Kind
}

func (e *OperationError) Error() string {
	diag := strings.TrimSpace(e.Diagnostic)
	if diag == "" {
		return fmt.Sprintf("%s: %s", e.Operation, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Operation, diag)
}

// Is matches the sentinel for the error's kind
func (e *OperationError) Is(target error) bool {
	switch e.Kind {
	case KindToolUnavailable:
		return target == ErrToolUnavailable
	default:
		return target == ErrOperationFailed
	}
}

// NewOperationError creates a new OperationError
func NewOperationError(operation, diagnostic string, kind Kind) *OperationError {
	return &OperationError{
		Operation:  operation,
		Diagnostic: diagnostic,
		Kind:       kind,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Output  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Output != "" {
		msg += fmt.Sprintf("\noutput: %s", e.Output)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, output string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Output:  output,
		Err:     err,
	}
}
