package state

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestPruneRemovesDeadPaths(t *testing.T) {
	t.Parallel()

	st := &State{}
	st.Add("live", "feature/live", "/tmp/wt/live", "develop")
	st.Add("dead", "feature/dead", "/tmp/wt/dead", "develop")

	changed := st.Prune([]string{"/tmp/wt/live"})
	if !changed {
		t.Error("Prune should report a change")
	}
	if len(st.Worktrees) != 1 || st.Worktrees[0].FeatureName != "live" {
		t.Errorf("Prune left %+v", st.Worktrees)
	}

	// Idempotent: a second prune against the same live set is a no-op.
	if st.Prune([]string{"/tmp/wt/live"}) {
		t.Error("second Prune should not report a change")
	}
}

func TestPruneEmptyRegistry(t *testing.T) {
	t.Parallel()

	st := &State{}
	if st.Prune([]string{"/tmp/anything"}) {
		t.Error("pruning an empty registry should not report a change")
	}
}

func TestPruneNormalizesPaths(t *testing.T) {
	t.Parallel()

	st := &State{}
	st.Add("feat", "feature/feat", "/tmp/wt/../wt/feat", "develop")

	if st.Prune([]string{"/tmp/wt/feat"}) {
		t.Error("unnormalized but equivalent path should count as live")
	}
}

func TestPruneResolvesSymlinks(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks not reliable on windows")
	}

	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	link := filepath.Join(dir, "link")
	if err := os.Mkdir(real, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("cannot create symlink: %v", err)
	}

	st := &State{}
	st.Add("feat", "feature/feat", link, "develop")

	if st.Prune([]string{real}) {
		t.Error("symlinked record path should match its resolved live path")
	}
}

func TestCanonicalPathMissingFile(t *testing.T) {
	t.Parallel()

	// Nonexistent paths still normalize.
	got := CanonicalPath("/does/not/exist/../exist/x")
	if got != "/does/not/exist/x" {
		t.Errorf("CanonicalPath = %q", got)
	}
}
