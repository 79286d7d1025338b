//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/state"
)

// testContext returns a context with a quiet logger and a printer
// writing into the returned buffer, so tests can assert on stdout.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &buf)
	return ctx, &buf
}

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// gitRun runs a git command in dir and fails the test on error.
func gitRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo in dir/name with develop as the
// initial branch and one commit. Returns the resolved repo path.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	gitRun(t, repoPath, "init", "-b", "develop")
	gitRun(t, repoPath, "config", "user.email", "test@test.com")
	gitRun(t, repoPath, "config", "user.name", "Test User")
	gitRun(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	gitRun(t, repoPath, "add", "README.md")
	gitRun(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// enterTestRepo creates a repo, isolates HOME, and chdirs into it.
func enterTestRepo(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	repoPath := setupTestRepo(t, tmp, "repo")
	t.Chdir(repoPath)
	return repoPath
}

// loadTestState reads the registry of a test repo.
func loadTestState(t *testing.T, repoPath string) *state.State {
	t.Helper()
	st, err := state.Load(state.Path(repoPath))
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	return st
}

// branchExists reports whether a local branch exists in the test repo.
func branchExists(t *testing.T, repoPath, branch string) bool {
	t.Helper()
	cmd := exec.Command("git", "rev-parse", "--verify", "refs/heads/"+branch)
	cmd.Dir = repoPath
	return cmd.Run() == nil
}

// runCommand executes a freshly constructed subcommand with args.
func runCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	return cmd.Execute()
}
