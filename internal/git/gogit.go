package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitOperations implements Operations in-process with go-git.
// Authentication uses go-git's defaults (ssh-agent for ssh remotes).
type GoGitOperations struct {
	dir  string
	repo *gogit.Repository
}

// NewGoGitOperations creates GoGitOperations for the repository containing dir.
// The repository is opened lazily so that a bad directory fails the first step.
func NewGoGitOperations(dir string) *GoGitOperations {
	return &GoGitOperations{dir: dir}
}

func (o *GoGitOperations) open() (*gogit.Repository, error) {
	if o.repo != nil {
		return o.repo, nil
	}
	repo, err := OpenRepository(o.dir)
	if err != nil {
		return nil, err
	}
	o.repo = repo
	return repo, nil
}

func (o *GoGitOperations) worktree() (*gogit.Worktree, error) {
	repo, err := o.open()
	if err != nil {
		return nil, err
	}
	return repo.Worktree()
}

// StageAll stages all changes, including untracked files and removals
func (o *GoGitOperations) StageAll(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return failure(err.Error())
	}
	wt, err := o.worktree()
	if err != nil {
		return failure(err.Error())
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return failure(fmt.Sprintf("failed to stage all changes: %v", err))
	}
	return success("")
}

// Commit creates a commit with the given message. The author comes from git config.
func (o *GoGitOperations) Commit(ctx context.Context, message string) Result {
	if err := ctx.Err(); err != nil {
		return failure(err.Error())
	}
	wt, err := o.worktree()
	if err != nil {
		return failure(err.Error())
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{})
	if err != nil {
		if errors.Is(err, gogit.ErrEmptyCommit) {
			return failure("nothing to commit, working tree clean")
		}
		return failure(fmt.Sprintf("failed to commit: %v", err))
	}
	return success(fmt.Sprintf("[%s] %s", hash.String()[:7], message))
}

// Push pushes branch to DefaultRemote and records it as the branch's upstream
func (o *GoGitOperations) Push(ctx context.Context, branch string) Result {
	repo, err := o.open()
	if err != nil {
		return failure(err.Error())
	}

	refName := plumbing.NewBranchReferenceName(branch)
	if _, err := repo.Reference(refName, true); err != nil {
		return failure(fmt.Sprintf("src refspec %s does not match any", branch))
	}

	refSpec := gitconfig.RefSpec(fmt.Sprintf("%s:%s", refName, refName))
	err = repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: DefaultRemote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return failure(fmt.Sprintf("failed to push branch %s: %v", branch, err))
	}

	if err := setUpstream(repo, branch, refName); err != nil {
		return failure(err.Error())
	}
	return success(fmt.Sprintf("branch '%s' set up to track '%s/%s'", branch, DefaultRemote, branch))
}

func setUpstream(repo *gogit.Repository, branch string, merge plumbing.ReferenceName) error {
	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("failed to read repository config: %w", err)
	}
	if cfg.Branches == nil {
		cfg.Branches = make(map[string]*gitconfig.Branch)
	}
	cfg.Branches[branch] = &gitconfig.Branch{
		Name:   branch,
		Remote: DefaultRemote,
		Merge:  merge,
	}
	if err := repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to set upstream for %s: %w", branch, err)
	}
	return nil
}
