package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBranch is used when the user leaves the branch prompt empty
	DefaultBranch = "master"

	// DefaultLogFile is the failure log, relative to the working directory
	DefaultLogFile = "logs.txt"

	// FileName is the config file looked up in the working directory
	FileName = ".pushit.yml"
)

// Backend selects the implementation of the git operations
type Backend string

const (
	// BackendGit shells out to the git executable
	BackendGit Backend = "git"
	// BackendGoGit runs the operations in-process with go-git
	BackendGoGit Backend = "go-git"
)

// Config holds pushit settings. DefaultBranch is the only one that changes
// what a push run does; LogFile and Backend are operational settings.
type Config struct {
	// DefaultBranch is pushed when the branch prompt is left empty
	DefaultBranch string `yaml:"defaultBranch"`
	// LogFile is where failed runs are appended
	LogFile string `yaml:"logFile,omitempty"`
	// Backend picks how git is run, with the same observable steps either way
	Backend Backend `yaml:"backend,omitempty"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		DefaultBranch: DefaultBranch,
		LogFile:       DefaultLogFile,
		Backend:       BackendGit,
	}
}

// Load builds the configuration for a run started in dir.
// An explicit path must exist; the implicit .pushit.yml is optional.
func Load(dir, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no config file, keep defaults
	default:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(&cfg)

	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendGit
	}
	if !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(dir, cfg.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PUSHIT_DEFAULT_BRANCH"); v != "" {
		cfg.DefaultBranch = v
	}
	if v := os.Getenv("PUSHIT_FAILURE_LOG"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PUSHIT_BACKEND"); v != "" {
		cfg.Backend = Backend(strings.ToLower(v))
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultBranch) == "" {
		return fmt.Errorf("defaultBranch must not be empty")
	}
	switch c.Backend {
	case BackendGit, BackendGoGit:
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)", c.Backend, BackendGit, BackendGoGit)
	}
	return nil
}
