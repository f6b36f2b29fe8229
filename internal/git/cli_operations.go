package git

import (
	"context"
	"errors"
	"os/exec"
)

// unavailableMessage is shown when git cannot be executed
const unavailableMessage = "Git is not installed or accessible. Please, install Git and try again."

// CLIOperations implements Operations with the git executable
type CLIOperations struct {
	runner  *CommandRunner
	checked bool
}

// NewCLIOperations creates CLIOperations running in dir
func NewCLIOperations(dir string) *CLIOperations {
	return &CLIOperations{runner: NewCommandRunner(dir)}
}

// run executes one git command and converts the outcome into a Result.
// The first call probes git --version so a missing tool fails the first step.
func (o *CLIOperations) run(ctx context.Context, args ...string) Result {
	if !o.checked {
		if err := CheckAvailable(ctx); err != nil {
			if ctx.Err() != nil {
				return failure(ctx.Err().Error())
			}
			return Result{Diagnostic: unavailableMessage + " (" + err.Error() + ")", Unavailable: true}
		}
		o.checked = true
	}

	output, err := o.runner.Run(ctx, args...)
	if err == nil {
		return success(output)
	}
	if errors.Is(err, exec.ErrNotFound) {
		return Result{Diagnostic: unavailableMessage, Unavailable: true}
	}
	if output == "" {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return failure(exitErr.Error())
		}
		return failure(err.Error())
	}
	return failure(output)
}
