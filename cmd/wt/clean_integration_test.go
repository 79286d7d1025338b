//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestClean_DryRun tests that --dry-run reports without removing.
func TestClean_DryRun(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "gone", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := os.RemoveAll(filepath.Join(repoPath, ".wt", "worktrees", "gone")); err != nil {
		t.Fatal(err)
	}

	ctx2, out := testContext(t)
	if err := runCommand(t, ctx2, newCleanCmd(), "--dry-run"); err != nil {
		t.Fatalf("clean --dry-run failed: %v", err)
	}
	if !strings.Contains(out.String(), "gone") {
		t.Errorf("dry run did not list the stale worktree: %q", out.String())
	}
	if st := loadTestState(t, repoPath); len(st.Worktrees) != 1 {
		t.Errorf("dry run mutated the registry: %+v", st.Worktrees)
	}
}

// TestClean_ForceRemovesStale tests cleanup of path-missing records.
func TestClean_ForceRemovesStale(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "stale", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := runCommand(t, ctx, newNewCmd(), "alive", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := os.RemoveAll(filepath.Join(repoPath, ".wt", "worktrees", "stale")); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, ctx, newCleanCmd(), "--force"); err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	st := loadTestState(t, repoPath)
	if len(st.Worktrees) != 1 || st.Worktrees[0].FeatureName != "alive" {
		t.Errorf("unexpected registry after clean: %+v", st.Worktrees)
	}
}

// TestClean_MergedFlag tests --merged cleanup of merged worktrees.
func TestClean_MergedFlag(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	// A fresh worktree points at the same commit as develop, so it
	// already counts as merged.
	if err := runCommand(t, ctx, newNewCmd(), "merged", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := runCommand(t, ctx, newCleanCmd(), "--merged", "--force"); err != nil {
		t.Fatalf("clean --merged failed: %v", err)
	}
	if st := loadTestState(t, repoPath); len(st.Worktrees) != 0 {
		t.Errorf("merged worktree survived: %+v", st.Worktrees)
	}
	if branchExists(t, repoPath, "feature/merged") {
		t.Error("merged branch survived")
	}
}

// TestClean_NothingToDo tests the empty-registry message.
func TestClean_NothingToDo(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	enterTestRepo(t)
	ctx, out := testContext(t)

	if err := runCommand(t, ctx, newCleanCmd()); err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if !strings.Contains(out.String(), "No worktrees to clean") {
		t.Errorf("unexpected output: %q", out.String())
	}
}
