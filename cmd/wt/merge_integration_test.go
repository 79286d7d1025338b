//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/birkelund/wt/internal/wterr"
)

// TestMerge_FastForward tests the full merge-then-teardown flow.
//
// Scenario: worktree with one extra commit, `wt merge` from inside it
// Expected: develop fast-forwards, worktree/branch/record all removed
func TestMerge_FastForward(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "feat", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	wtPath := filepath.Join(repoPath, ".wt", "worktrees", "feat")
	if err := os.WriteFile(filepath.Join(wtPath, "feature.txt"), []byte("work\n"), 0644); err != nil {
		t.Fatal(err)
	}
	gitRun(t, wtPath, "add", "feature.txt")
	gitRun(t, wtPath, "commit", "-m", "add feature")

	t.Chdir(wtPath)
	if err := runCommand(t, ctx, newMergeCmd()); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	t.Chdir(repoPath)

	// The commit is now on develop.
	log := gitRun(t, repoPath, "log", "--oneline", "develop")
	if !strings.Contains(log, "add feature") {
		t.Errorf("develop is missing the merged commit:\n%s", log)
	}
	if branchExists(t, repoPath, "feature/feat") {
		t.Error("feature branch still exists after merge")
	}
	if _, err := os.Stat(wtPath); err == nil {
		t.Error("worktree still exists after merge")
	}
	if st := loadTestState(t, repoPath); len(st.Worktrees) != 0 {
		t.Errorf("registry still has records: %+v", st.Worktrees)
	}
}

// TestMerge_AutoCommitsDirtyTree tests the auto-commit policy.
func TestMerge_AutoCommitsDirtyTree(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "wip", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	wtPath := filepath.Join(repoPath, ".wt", "worktrees", "wip")
	if err := os.WriteFile(filepath.Join(wtPath, "wip.txt"), []byte("draft\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(wtPath)
	if err := runCommand(t, ctx, newMergeCmd()); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	t.Chdir(repoPath)

	log := gitRun(t, repoPath, "log", "--oneline", "develop")
	if !strings.Contains(log, "implement: feature/wip") {
		t.Errorf("expected auto-commit on develop:\n%s", log)
	}
}

// TestMerge_ConflictingFFFlags tests that --no-ff and --ff-only are
// rejected before anything is mutated.
func TestMerge_ConflictingFFFlags(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "flags", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	wtPath := filepath.Join(repoPath, ".wt", "worktrees", "flags")
	// Leave the tree dirty: if validation ran too late, an auto-commit
	// would be created.
	if err := os.WriteFile(filepath.Join(wtPath, "x.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(wtPath)
	err := runCommand(t, ctx, newMergeCmd(), "--no-ff", "--ff-only")
	t.Chdir(repoPath)
	if wterr.KindOf(err) != wterr.KindUsage {
		t.Fatalf("expected UsageError, got %v", err)
	}

	// Nothing was mutated.
	if !branchExists(t, repoPath, "feature/flags") {
		t.Error("branch disappeared despite flag conflict")
	}
	status := gitRun(t, wtPath, "status", "--porcelain")
	if !strings.Contains(status, "x.txt") {
		t.Error("dirty file was committed despite flag conflict")
	}
}

// TestMerge_FromRepoRoot tests the NotInWorktree gate.
func TestMerge_FromRepoRoot(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "somewhere", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	err := runCommand(t, ctx, newMergeCmd())
	if wterr.KindOf(err) != wterr.KindNotInWorktree {
		t.Fatalf("expected NotInWorktree, got %v", err)
	}
}

// TestMerge_NoFFCreatesMergeCommit tests the --no-ff flag.
func TestMerge_NoFFCreatesMergeCommit(t *testing.T) {
	// Not parallel - modifies HOME and cwd
	repoPath := enterTestRepo(t)
	ctx, _ := testContext(t)

	if err := runCommand(t, ctx, newNewCmd(), "noff", "--no-companion"); err != nil {
		t.Fatalf("new failed: %v", err)
	}
	wtPath := filepath.Join(repoPath, ".wt", "worktrees", "noff")
	if err := os.WriteFile(filepath.Join(wtPath, "f.txt"), []byte("f\n"), 0644); err != nil {
		t.Fatal(err)
	}
	gitRun(t, wtPath, "add", "f.txt")
	gitRun(t, wtPath, "commit", "-m", "noff work")

	t.Chdir(wtPath)
	if err := runCommand(t, ctx, newMergeCmd(), "--no-ff"); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	t.Chdir(repoPath)

	// HEAD on develop is a merge commit (two parents).
	parents := strings.Fields(strings.TrimSpace(gitRun(t, repoPath, "log", "-1", "--format=%P", "develop")))
	if len(parents) != 2 {
		t.Errorf("expected a merge commit, got %d parent(s)", len(parents))
	}
}
