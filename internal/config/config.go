// Package config manages the repository-scoped wt configuration at
// .wt/wt.json and the optional user-level defaults file at
// ~/.config/wt/config.toml.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the repository-scoped wt configuration.
// All keys are written on save; unknown keys are ignored on load.
type Config struct {
	BranchPrefix         string `json:"branchPrefix"`
	BaseBranch           string `json:"baseBranch"`
	Remote               string `json:"remote"`
	WorktreesDir         string `json:"worktreesDir"` // relative to repo root unless absolute
	DefaultCompanionTool string `json:"defaultCompanionTool"`
	InitCommand          string `json:"initCommand,omitempty"`
	AutoCommit           *bool  `json:"autoCommit,omitempty"`   // default true
	PushOnCreate         *bool  `json:"pushOnCreate,omitempty"` // default false
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		BranchPrefix:         "feature/",
		BaseBranch:           "develop",
		Remote:               "origin",
		WorktreesDir:         ".wt/worktrees",
		DefaultCompanionTool: "opencode",
	}
}

// AutoCommitEnabled reports whether merge/pr should auto-commit a dirty
// working tree (the default policy).
func (c *Config) AutoCommitEnabled() bool {
	return c.AutoCommit == nil || *c.AutoCommit
}

// PushOnCreateEnabled reports whether 'wt new' pushes the branch by default.
func (c *Config) PushOnCreateEnabled() bool {
	return c.PushOnCreate != nil && *c.PushOnCreate
}

// Dir returns the .wt directory for a repository root.
func Dir(repoRoot string) string {
	return filepath.Join(repoRoot, ".wt")
}

// Path returns the config file path for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(Dir(repoRoot), "wt.json")
}

// Load reads the config at path, layered on top of base (built-in
// defaults, optionally overridden by user-level defaults). A missing
// file yields base unchanged; a malformed file is a surfaced error
// since silently dropping configuration is worse than failing.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read config: %w", err)
	}

	// Unmarshal over the pre-filled base so absent keys keep defaults.
	cfg := base
	if err := json.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories. All
// recognized keys are written so the file documents the full schema.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	// Pin optional policy keys so they always appear in the file.
	if c.AutoCommit == nil {
		v := true
		c.AutoCommit = &v
	}
	if c.PushOnCreate == nil {
		v := false
		c.PushOnCreate = &v
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Ensure loads the repository config, creating the file with defaults
// on first use.
func Ensure(repoRoot string, base Config) (Config, error) {
	path := Path(repoRoot)
	cfg, err := Load(path, base)
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := cfg.Save(path); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// WorktreesPath resolves the configured worktrees directory against the
// repository root.
func (c *Config) WorktreesPath(repoRoot string) string {
	if filepath.IsAbs(c.WorktreesDir) {
		return c.WorktreesDir
	}
	return filepath.Join(repoRoot, c.WorktreesDir)
}

// EnsureWorktreesGitignore makes sure materialized worktrees are never
// committed: .wt/.gitignore ignores the worktrees directory (and tmp
// files) while keeping wt.json and state.json trackable.
func EnsureWorktreesGitignore(repoRoot string) error {
	dir := Dir(repoRoot)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create .wt directory: %w", err)
	}
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	content := "worktrees/\n*.tmp\n"
	return os.WriteFile(path, []byte(content), 0o644)
}
