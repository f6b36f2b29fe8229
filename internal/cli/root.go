package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pushit.dev/pushit/internal/actions"
	"pushit.dev/pushit/internal/cli/helpers"
	"pushit.dev/pushit/internal/runtime"
)

// ExitError carries a non-zero exit status out of cobra
type ExitError struct {
	Status actions.ExitStatus
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Status)
}

// ExitCode returns the process exit code for an error returned by Execute
func ExitCode(err error) int {
	if err == nil {
		return int(actions.ExitSuccess)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Status)
	}
	return int(actions.ExitFailure)
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "pushit",
		Short: "Stage, commit and push all changes in one go",
		Long: `Pushit asks for a commit message and a branch, then stages every change,
commits it and pushes the branch to origin with upstream tracking.

Leaving the branch empty pushes to the default branch (master unless configured).
Failed runs are appended to logs.txt in the working directory.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, configPath, func(ctx *runtime.Context) error {
				orchestrator := actions.NewOrchestrator(ctx.Config.DefaultBranch, ctx.Operations, ctx.Prompter, ctx.Splog, ctx.FailureLog)
				if status := orchestrator.Run(cmd.Context()); status != actions.ExitSuccess {
					return &ExitError{Status: status}
				}
				return nil
			})
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a config file (default: .pushit.yml in the working directory)")

	return rootCmd
}
