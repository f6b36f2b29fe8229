package actions

import (
	"context"
	"errors"
	"fmt"

	pusherrors "pushit.dev/pushit/internal/errors"
	"pushit.dev/pushit/internal/failurelog"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/tui"
)

// ExitStatus is the process exit code of a push run
type ExitStatus int

const (
	// ExitSuccess means all three steps completed
	ExitSuccess ExitStatus = 0
	// ExitFailure means a step failed or the run could not start
	ExitFailure ExitStatus = 1
	// ExitInterrupted means the user canceled the run
	ExitInterrupted ExitStatus = 130
)

// Operation names as shown to the user and written to the failure log
const (
	OpStageAll = "git add"
	OpCommit   = "git commit"
	OpPush     = "git push"
)

// Console messages
const (
	MsgCommitPrompt       = "Please, enter some message for this commit"
	MsgBranchPrompt       = "Please, enter the branch name (%s if not specified)"
	MsgCommitMessageEmpty = "Commit message cannot be empty. Please, enter a valid commit message"
	MsgDefaultBranchUsed  = "USING DEFAULT BRANCH NAME: '%s'"
	MsgTrying             = "TRYING TO PUSH CHANGES..."
	MsgFilesStaged        = "FILES ADDED TO STAGING AREA: OK"
	MsgCommitCreated      = "COMMIT CREATED: OK"
	MsgChangesPushed      = "CHANGES PUSHED: OK"
	MsgOperationFailed    = "Error occurred during '%s' operation."
	MsgNotPushed          = "CHANGES HAVE NOT BEEN PUSHED"
	MsgInterrupted        = "YOU PRESSED CTRL+C TO END SCRIPT EXECUTION"
)

// FailureRecorder stores failed runs
type FailureRecorder interface {
	Record(ctx context.Context, entry failurelog.Entry) error
}

// Orchestrator runs the prompt, stage, commit, push pipeline
type Orchestrator struct {
	defaultBranch string
	ops           git.Operations
	prompter      tui.Prompter
	splog         *tui.Splog
	failures      FailureRecorder
}

// NewOrchestrator creates an Orchestrator. defaultBranch replaces an empty branch answer.
func NewOrchestrator(defaultBranch string, ops git.Operations, prompter tui.Prompter, splog *tui.Splog, failures FailureRecorder) *Orchestrator {
	return &Orchestrator{
		defaultBranch: defaultBranch,
		ops:           ops,
		prompter:      prompter,
		splog:         splog,
		failures:      failures,
	}
}

// pushRun is the input collected from the prompts
type pushRun struct {
	message string
	branch  string
}

type step struct {
	name string
	run  func(ctx context.Context) git.Result
	done string
}

// Run executes one push run and reports how it ended
func (o *Orchestrator) Run(ctx context.Context) ExitStatus {
	run, err := o.execute(ctx)

	var opErr *pusherrors.OperationError
	switch {
	case err == nil:
		o.splog.Success(MsgChangesPushed)
		return ExitSuccess
	case errors.Is(err, pusherrors.ErrUserInterrupted):
		o.splog.Debug("run interrupted: %v", err)
		o.splog.Error(MsgInterrupted)
		o.splog.Error(MsgNotPushed)
		return ExitInterrupted
	case errors.As(err, &opErr):
		o.reportFailure(ctx, run, opErr)
		return ExitFailure
	default:
		o.splog.Error("ERROR: %v", err)
		o.splog.Error(MsgNotPushed)
		return ExitFailure
	}
}

func (o *Orchestrator) execute(ctx context.Context) (pushRun, error) {
	var run pushRun

	message, err := o.promptCommitMessage(ctx)
	if err != nil {
		return run, err
	}
	run.message = message

	branch, err := o.promptBranchName(ctx)
	if err != nil {
		return run, err
	}
	run.branch = branch

	o.splog.Warn(MsgTrying)

	steps := []step{
		{name: OpStageAll, run: o.ops.StageAll, done: MsgFilesStaged},
		{name: OpCommit, run: func(ctx context.Context) git.Result { return o.ops.Commit(ctx, run.message) }, done: MsgCommitCreated},
		{name: OpPush, run: func(ctx context.Context) git.Result { return o.ops.Push(ctx, run.branch) }},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return run, fmt.Errorf("%w: %w", pusherrors.ErrUserInterrupted, err)
		}

		o.splog.Debug("running %s", s.name)
		result := s.run(ctx)

		// git saw the same interrupt, so its failure is not an operational fault
		if err := ctx.Err(); err != nil {
			return run, fmt.Errorf("%w during %s: %w", pusherrors.ErrUserInterrupted, s.name, err)
		}

		if !result.Success {
			kind := pusherrors.KindOperationFailed
			if result.Unavailable {
				kind = pusherrors.KindToolUnavailable
			}
			return run, pusherrors.NewOperationError(s.name, result.Diagnostic, kind)
		}

		if result.Diagnostic != "" {
			o.splog.Debug("%s", result.Diagnostic)
		}
		if s.done != "" {
			o.splog.Success(s.done)
		}
	}

	return run, nil
}

func (o *Orchestrator) promptCommitMessage(ctx context.Context) (string, error) {
	for {
		message, err := o.prompter.Ask(ctx, MsgCommitPrompt)
		if err != nil {
			return "", err
		}
		if message != "" {
			return message, nil
		}
		o.splog.Error(MsgCommitMessageEmpty)
	}
}

func (o *Orchestrator) promptBranchName(ctx context.Context) (string, error) {
	branch, err := o.prompter.Ask(ctx, fmt.Sprintf(MsgBranchPrompt, o.defaultBranch))
	if err != nil {
		return "", err
	}
	if branch == "" {
		o.splog.Warn(MsgDefaultBranchUsed, o.defaultBranch)
		return o.defaultBranch, nil
	}
	return branch, nil
}

func (o *Orchestrator) reportFailure(ctx context.Context, run pushRun, opErr *pusherrors.OperationError) {
	o.splog.Error(MsgOperationFailed, opErr.Operation)
	o.splog.Error("ERROR: %s", opErr.Diagnostic)
	o.splog.Error(MsgNotPushed)

	err := o.failures.Record(ctx, failurelog.Entry{
		Operation:  opErr.Operation,
		Branch:     run.branch,
		Message:    run.message,
		Diagnostic: opErr.Diagnostic,
	})
	if err != nil {
		o.splog.Error("ERROR: could not write failure log: %v", err)
	}
}
