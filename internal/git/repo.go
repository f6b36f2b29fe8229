package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// OpenRepository opens the repository containing dir, searching parent directories
func OpenRepository(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}

// GetRepoRoot returns the root directory of the repository containing dir
func GetRepoRoot(dir string) (string, error) {
	repo, err := OpenRepository(dir)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
