package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"pushit.dev/pushit/internal/cli"
	"pushit.dev/pushit/testhelpers"
)

func runPushit(t *testing.T, dir, input string, args ...string) (string, error) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Setenv("PUSHIT_NON_INTERACTIVE", "1")
	t.Setenv("PUSHIT_LOG_FILE", "")
	t.Setenv("PUSHIT_BACKEND", "")
	t.Setenv("PUSHIT_DEFAULT_BRANCH", "")
	t.Setenv("PUSHIT_FAILURE_LOG", "")
	t.Setenv("DEBUG", "")
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	prevDir, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	t.Setenv("PWD", dir)

	var out bytes.Buffer
	cmd := cli.NewRootCmd("1.0.0", "abc123", "2026-10-16")
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("pushes the working tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("more", "feature", true)
		})

		out, err := runPushit(t, scene.Dir, "add feature\nmain\n")
		require.NoError(t, err, out)
		require.Equal(t, 0, cli.ExitCode(err))
		require.Contains(t, out, "CHANGES PUSHED: OK")

		local, err := scene.Repo.GetRevision("main")
		require.NoError(t, err)
		remote, err := testhelpers.RemoteRevision(scene.RemoteDir, "main")
		require.NoError(t, err)
		require.Equal(t, local, remote)

		_, err = os.Stat(filepath.Join(scene.Dir, "logs.txt"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("logs a failed push", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("more", "feature", true)
		})

		// master does not exist, the repository uses main
		out, err := runPushit(t, scene.Dir, "add feature\n\n")
		require.Error(t, err)
		require.Equal(t, 1, cli.ExitCode(err))
		require.Contains(t, out, "USING DEFAULT BRANCH NAME: 'master'")
		require.Contains(t, out, "Error occurred during 'git push' operation.")

		data, err := os.ReadFile(filepath.Join(scene.Dir, "logs.txt"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		require.Len(t, lines, 1)
		require.Contains(t, lines[0], `operation="git push"`)
		require.Contains(t, lines[0], `branch=master`)
	})

	t.Run("closed input ends the run as interrupted", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		out, err := runPushit(t, scene.Dir, "")
		require.Error(t, err)
		require.Equal(t, 130, cli.ExitCode(err))
		require.Contains(t, out, "YOU PRESSED CTRL+C TO END SCRIPT EXECUTION")

		_, err = os.Stat(filepath.Join(scene.Dir, "logs.txt"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("reads the default branch from the config file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChange("first", "init", true)
		})
		configPath := filepath.Join(t.TempDir(), "pushit.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("defaultBranch: main\n"), 0600))

		out, err := runPushit(t, scene.Dir, "first commit\n\n", "--config", configPath)
		require.NoError(t, err, out)
		require.Contains(t, out, "USING DEFAULT BRANCH NAME: 'main'")

		upstream, err := scene.Repo.Upstream("main")
		require.NoError(t, err)
		require.Equal(t, "origin/main", upstream)
	})

	t.Run("operational settings only move the failure log", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("initial", "init"); err != nil {
				return err
			}
			return s.Repo.CreateChange("more", "feature", true)
		})
		configPath := filepath.Join(t.TempDir(), "pushit.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("logFile: failures/push.log\nbackend: go-git\n"), 0600))

		out, err := runPushit(t, scene.Dir, "add feature\n\n", "--config", configPath)
		require.Equal(t, 1, cli.ExitCode(err))
		require.Contains(t, out, "USING DEFAULT BRANCH NAME: 'master'")
		require.Contains(t, out, "Error occurred during 'git push' operation.")

		_, err = os.Stat(filepath.Join(scene.Dir, "logs.txt"))
		require.True(t, os.IsNotExist(err))

		data, err := os.ReadFile(filepath.Join(scene.Dir, "failures", "push.log"))
		require.NoError(t, err)
		require.Contains(t, string(data), `operation="git push"`)
		require.Contains(t, string(data), `branch=master`)
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		dir := t.TempDir()

		_, err := runPushit(t, dir, "", "--config", filepath.Join(dir, "missing.yml"))
		require.Error(t, err)
		var exitErr *cli.ExitError
		require.NotErrorAs(t, err, &exitErr)
		require.Equal(t, 1, cli.ExitCode(err))
	})

	t.Run("prints the version", func(t *testing.T) {
		out, err := runPushit(t, t.TempDir(), "", "--version")
		require.NoError(t, err)
		require.Contains(t, out, "1.0.0 (commit abc123, built 2026-10-16)")
	})
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, cli.ExitCode(nil))
	require.Equal(t, 130, cli.ExitCode(&cli.ExitError{Status: 130}))
	require.Equal(t, 1, cli.ExitCode(os.ErrNotExist))
}
