package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(dir, "")
		require.NoError(t, err)
		require.Equal(t, "master", cfg.DefaultBranch)
		require.Equal(t, filepath.Join(dir, "logs.txt"), cfg.LogFile)
		require.Equal(t, BackendGit, cfg.Backend)
	})

	t.Run("reads .pushit.yml from the working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "defaultBranch: main\nbackend: go-git\n")

		cfg, err := Load(dir, "")
		require.NoError(t, err)
		require.Equal(t, "main", cfg.DefaultBranch)
		require.Equal(t, BackendGoGit, cfg.Backend)
		require.Equal(t, filepath.Join(dir, "logs.txt"), cfg.LogFile)
	})

	t.Run("keeps absolute log paths", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(t.TempDir(), "failures.log")
		writeConfig(t, dir, "defaultBranch: trunk\nlogFile: "+logPath+"\n")

		cfg, err := Load(dir, "")
		require.NoError(t, err)
		require.Equal(t, logPath, cfg.LogFile)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "defaultBranch: main\n")
		t.Setenv("PUSHIT_DEFAULT_BRANCH", "develop")
		t.Setenv("PUSHIT_BACKEND", "GO-GIT")

		cfg, err := Load(dir, "")
		require.NoError(t, err)
		require.Equal(t, "develop", cfg.DefaultBranch)
		require.Equal(t, BackendGoGit, cfg.Backend)
	})

	t.Run("explicit config path must exist", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Load(dir, filepath.Join(dir, "missing.yml"))
		require.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "defaultBranch: [unterminated\n")

		_, err := Load(dir, "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("rejects blank default branch", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "defaultBranch: \"   \"\n")

		_, err := Load(dir, "")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Default()},
		{name: "go-git backend", cfg: Config{DefaultBranch: "main", Backend: BackendGoGit}},
		{name: "unknown backend", cfg: Config{DefaultBranch: "main", Backend: "svn"}, wantErr: true},
		{name: "empty branch", cfg: Config{Backend: BackendGit}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
