package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.BranchPrefix != "feature/" {
		t.Errorf("BranchPrefix = %q", cfg.BranchPrefix)
	}
	if cfg.BaseBranch != "develop" {
		t.Errorf("BaseBranch = %q", cfg.BaseBranch)
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q", cfg.Remote)
	}
	if cfg.WorktreesDir != ".wt/worktrees" {
		t.Errorf("WorktreesDir = %q", cfg.WorktreesDir)
	}
	if !cfg.AutoCommitEnabled() {
		t.Error("autoCommit should default to enabled")
	}
	if cfg.PushOnCreateEnabled() {
		t.Error("pushOnCreate should default to disabled")
	}
}

func TestLoadMissingKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "wt.json"), Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wt.json")
	body := `{"baseBranch": "main", "pushOnCreate": true, "futureKey": 42}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseBranch != "main" {
		t.Errorf("BaseBranch = %q, want main", cfg.BaseBranch)
	}
	// Absent keys keep their defaults; unknown keys are ignored.
	if cfg.BranchPrefix != "feature/" {
		t.Errorf("BranchPrefix = %q, want default", cfg.BranchPrefix)
	}
	if !cfg.PushOnCreateEnabled() {
		t.Error("pushOnCreate true was not honored")
	}
	if !cfg.AutoCommitEnabled() {
		t.Error("absent autoCommit should stay enabled")
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wt.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, Default()); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".wt", "wt.json")
	autoCommit := false
	cfg := Config{
		BranchPrefix:         "feat/",
		BaseBranch:           "main",
		Remote:               "upstream",
		WorktreesDir:         "trees",
		DefaultCompanionTool: "vim",
		InitCommand:          "make setup",
		AutoCommit:           &autoCommit,
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BranchPrefix != "feat/" || loaded.BaseBranch != "main" ||
		loaded.Remote != "upstream" || loaded.WorktreesDir != "trees" ||
		loaded.DefaultCompanionTool != "vim" || loaded.InitCommand != "make setup" {
		t.Errorf("round-trip mismatch: %+v", loaded)
	}
	if loaded.AutoCommitEnabled() {
		t.Error("autoCommit=false was not preserved")
	}
	if loaded.PushOnCreateEnabled() {
		t.Error("pushOnCreate should remain false")
	}

	// Policy keys are always written, even when unset before saving.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"branchPrefix", "baseBranch", "remote", "worktreesDir", "autoCommit", "pushOnCreate"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("saved config is missing key %q", key)
		}
	}
}

func TestEnsureCreatesFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg, err := Ensure(root, Default())
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if cfg.BaseBranch != "develop" {
		t.Errorf("Ensure changed defaults: %+v", cfg)
	}
	if _, err := os.Stat(Path(root)); err != nil {
		t.Errorf("Ensure did not create the config file: %v", err)
	}

	// A second Ensure keeps the existing file.
	if _, err := Ensure(root, Default()); err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
}

func TestWorktreesPath(t *testing.T) {
	t.Parallel()

	cfg := Default()
	got := cfg.WorktreesPath("/repo")
	if got != filepath.Join("/repo", ".wt", "worktrees") {
		t.Errorf("WorktreesPath = %q", got)
	}

	cfg.WorktreesDir = "/abs/trees"
	if cfg.WorktreesPath("/repo") != "/abs/trees" {
		t.Error("absolute worktreesDir should be used as-is")
	}
}

func TestEnsureWorktreesGitignore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := EnsureWorktreesGitignore(root); err != nil {
		t.Fatalf("EnsureWorktreesGitignore: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, ".wt", ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "worktrees/") {
		t.Errorf("gitignore content = %q", data)
	}

	// Existing file is left alone.
	custom := filepath.Join(root, ".wt", ".gitignore")
	if err := os.WriteFile(custom, []byte("mine\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureWorktreesGitignore(root); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(custom)
	if string(data) != "mine\n" {
		t.Error("existing gitignore was overwritten")
	}
}
