package runtime

import (
	"fmt"
	"io"

	"pushit.dev/pushit/internal/config"
	"pushit.dev/pushit/internal/failurelog"
	"pushit.dev/pushit/internal/git"
	"pushit.dev/pushit/internal/tui"
)

// Context provides access to the dependencies of a push run
type Context struct {
	Config     config.Config
	Splog      *tui.Splog
	Operations git.Operations
	Prompter   tui.Prompter
	FailureLog *failurelog.Log
	WorkDir    string
}

// NewContext creates a context from already built dependencies
func NewContext(cfg config.Config, splog *tui.Splog, ops git.Operations, prompter tui.Prompter, workDir string) *Context {
	return &Context{
		Config:     cfg,
		Splog:      splog,
		Operations: ops,
		Prompter:   prompter,
		FailureLog: failurelog.New(cfg.LogFile),
		WorkDir:    workDir,
	}
}

// GetContext loads the configuration for workDir and builds the real dependencies.
// configPath may be empty to use the optional .pushit.yml in workDir. Answers
// are read from in when no terminal is available.
func GetContext(workDir, configPath string, splog *tui.Splog, in io.Reader) (*Context, error) {
	cfg, err := config.Load(workDir, configPath)
	if err != nil {
		return nil, err
	}

	ops, err := git.NewOperations(cfg.Backend, workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create git backend: %w", err)
	}

	// Not being in a repository is reported by the first git operation
	if root, err := git.GetRepoRoot(workDir); err == nil {
		splog.Debug("repository root: %s", root)
	} else {
		splog.Debug("no repository found from %s: %v", workDir, err)
	}
	splog.Debug("backend=%s default branch=%s failure log=%s", cfg.Backend, cfg.DefaultBranch, cfg.LogFile)

	return NewContext(cfg, splog, ops, tui.NewPrompter(in, splog.Writer()), workDir), nil
}
