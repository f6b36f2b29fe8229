package testhelpers

import (
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene is a test repository with a bare origin remote.
type Scene struct {
	Dir       string
	RemoteDir string
	Repo      *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository in a temporary directory, adds a bare origin
// and runs setup. Tests are skipped when git is not installed.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := filepath.Join(t.TempDir(), "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	remoteDir, err := repo.CreateBareRemote("origin")
	if err != nil {
		t.Fatalf("Failed to create remote: %v", err)
	}

	scene := &Scene{
		Dir:       dir,
		RemoteDir: remoteDir,
		Repo:      repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Failed to set up scene: %v", err)
		}
	}

	return scene
}
