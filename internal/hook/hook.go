// Package hook runs the configured initialization command after a
// worktree is created or checked out. The hook receives its context as
// WT_* environment variables and runs with the worktree as its working
// directory. Failures are reported as a plain error; strict vs
// non-strict interpretation is the caller's decision.
package hook

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/birkelund/wt/internal/log"
)

// Context holds the values exposed to the init hook.
type Context struct {
	WTRoot       string // .wt directory
	RepoRoot     string // repository root
	WorktreePath string // created worktree
	FeatureName  string
	Branch       string
	BaseBranch   string
	BasePath     string // checkout holding the base branch (the repo root)
}

// Env returns the process environment extended with the WT_* contract
// variables.
func (c Context) Env() []string {
	return append(os.Environ(),
		"WT_ROOT="+c.WTRoot,
		"WT_REPO_ROOT="+c.RepoRoot,
		"WT_WORKTREE_PATH="+c.WorktreePath,
		"WT_FEAT_NAME="+c.FeatureName,
		"WT_BRANCH="+c.Branch,
		"WT_BASE_BRANCH="+c.BaseBranch,
		"WT_BASE_PATH="+c.BasePath,
	)
}

// Resolve determines the init command to run: the configured command if
// set, otherwise .wt/hooks/init.sh when present. Returns empty if no
// hook applies.
func Resolve(configured, wtRoot string) string {
	if configured != "" {
		return configured
	}

	fallback := filepath.Join(wtRoot, "hooks", "init.sh")
	if info, err := os.Stat(fallback); err == nil && info.Mode().IsRegular() {
		return fallback
	}
	return ""
}

// Run executes the hook via sh -c with inherited standard streams and
// the worktree as working directory. A non-zero exit or execution error
// is returned as a plain error; Run never aborts the calling operation
// by itself.
func Run(ctx context.Context, hctx Context, script string) error {
	l := log.FromContext(ctx)
	l.Printf("Running init hook: %s\n", script)
	l.Command("sh", "-c", script)

	c := exec.CommandContext(ctx, "sh", "-c", script)
	c.Dir = hctx.WorktreePath
	c.Env = hctx.Env()
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
