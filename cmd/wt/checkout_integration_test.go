//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/birkelund/wt/internal/wterr"
)

// TestCheckout_ExistingBranch tests materializing a local branch.
//
// Scenario: `wt checkout feature/existing` for a branch with no worktree
// Expected: worktree created under .wt/worktrees/existing and registered
func TestCheckout_ExistingBranch(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	gitRun(t, repoPath, "branch", "feature/existing")
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newCheckoutCmd(), "feature/existing"); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	wtPath := filepath.Join(repoPath, ".wt", "worktrees", "existing")
	if _, err := os.Stat(wtPath); err != nil {
		t.Errorf("worktree path missing: %v", err)
	}
	st := loadTestState(t, repoPath)
	if len(st.Worktrees) != 1 || st.Worktrees[0].FeatureName != "existing" {
		t.Errorf("unexpected registry: %+v", st.Worktrees)
	}
}

// TestCheckout_Idempotent tests the short-circuit when the branch is
// already checked out.
func TestCheckout_Idempotent(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "feat", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	ctx2, out := testContext(t)
	if err := runCommand(t, ctx2, newCheckoutCmd(), "feature/feat"); err != nil {
		t.Fatalf("second checkout failed: %v", err)
	}
	if !strings.Contains(out.String(), "already in worktree") {
		t.Errorf("expected idempotent message, got %q", out.String())
	}
	if st := loadTestState(t, repoPath); len(st.Worktrees) != 1 {
		t.Errorf("duplicate record created: %+v", st.Worktrees)
	}
}

// TestCheckout_PrintPath tests --print-path output for scripting.
func TestCheckout_PrintPath(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	gitRun(t, repoPath, "branch", "feature/scripted")
	ctx, out := testContext(t)

	if err := runCommand(t, ctx, newCheckoutCmd(), "feature/scripted", "-p"); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	want := filepath.Join(repoPath, ".wt", "worktrees", "scripted")
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("printed path %q, want %q", got, want)
	}
}

// TestCheckout_BranchNotFound tests the BranchNotFound gate.
func TestCheckout_BranchNotFound(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	enterTestRepo(t)
	ctx, _ := testContext(t)

	err := runCommand(t, ctx, newCheckoutCmd(), "feature/ghost")
	if wterr.KindOf(err) != wterr.KindBranchNotFound {
		t.Fatalf("expected BranchNotFound, got %v", err)
	}
}

// TestCheckout_UnprefixedBranchKeepsFullName tests feature-name
// derivation for branches without the configured prefix.
func TestCheckout_UnprefixedBranchKeepsFullName(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	gitRun(t, repoPath, "branch", "hotfix-123")
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newCheckoutCmd(), "hotfix-123"); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	st := loadTestState(t, repoPath)
	if len(st.Worktrees) != 1 || st.Worktrees[0].FeatureName != "hotfix-123" {
		t.Errorf("unexpected registry: %+v", st.Worktrees)
	}
}
