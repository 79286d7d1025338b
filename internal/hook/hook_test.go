package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestContextEnv(t *testing.T) {
	t.Parallel()

	c := Context{
		WTRoot:       "/repo/.wt",
		RepoRoot:     "/repo",
		WorktreePath: "/repo/.wt/worktrees/feat",
		FeatureName:  "feat",
		Branch:       "feature/feat",
		BaseBranch:   "develop",
		BasePath:     "/repo",
	}

	env := c.Env()
	want := map[string]string{
		"WT_ROOT":          "/repo/.wt",
		"WT_REPO_ROOT":     "/repo",
		"WT_WORKTREE_PATH": "/repo/.wt/worktrees/feat",
		"WT_FEAT_NAME":     "feat",
		"WT_BRANCH":        "feature/feat",
		"WT_BASE_BRANCH":   "develop",
		"WT_BASE_PATH":     "/repo",
	}
	got := map[string]string{}
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, "WT_") {
			got[k] = v
		}
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestResolveConfiguredWins(t *testing.T) {
	t.Parallel()

	if got := Resolve("make setup", t.TempDir()); got != "make setup" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestResolveFallbackHook(t *testing.T) {
	t.Parallel()

	wtRoot := t.TempDir()
	hooksDir := filepath.Join(wtRoot, "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(hooksDir, "init.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if got := Resolve("", wtRoot); got != script {
		t.Errorf("Resolve = %q, want %q", got, script)
	}
}

func TestResolveNoHook(t *testing.T) {
	t.Parallel()

	if got := Resolve("", t.TempDir()); got != "" {
		t.Errorf("Resolve = %q, want empty", got)
	}
}
