package workflow

import (
	"context"
	"os"
	"path/filepath"

	"github.com/birkelund/wt/internal/format"
	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/hook"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/state"
	"github.com/birkelund/wt/internal/wterr"
)

// CreateOptions controls wt new.
type CreateOptions struct {
	FeatureName string
	Base        string // overrides config.BaseBranch when set
	Push        *bool  // overrides config pushOnCreate when set
	NoInit      bool
	StrictInit  bool
}

// Create materializes a new worktree with a fresh feature branch forked
// from the base branch, records it, and runs the init hook. The record
// is appended only after the worktree exists; a strict hook failure
// rolls everything back.
func (s *Session) Create(ctx context.Context, opts CreateOptions) (*state.Record, error) {
	l := log.FromContext(ctx)

	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}

	normalized, err := format.NormalizeFeatureName(opts.FeatureName)
	if err != nil {
		return nil, err
	}
	branch := s.Config.BranchPrefix + normalized
	worktreePath := filepath.Join(s.Config.WorktreesPath(s.RepoRoot), normalized)
	baseBranch := opts.Base
	if baseBranch == "" {
		baseBranch = s.Config.BaseBranch
	}

	if git.BranchExists(ctx, s.RepoRoot, branch) {
		return nil, wterr.BranchExists(branch)
	}
	if err := s.resolveBase(ctx, baseBranch); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(worktreePath), 0o755); err != nil {
		return nil, err
	}
	l.Printf("Creating worktree at %s...\n", worktreePath)
	if err := git.AddWorktree(ctx, s.RepoRoot, worktreePath, branch, baseBranch); err != nil {
		return nil, err
	}

	rec, err := s.State.Add(normalized, branch, worktreePath, baseBranch)
	if err != nil {
		return nil, err
	}
	if err := s.SaveState(); err != nil {
		return nil, err
	}

	push := s.Config.PushOnCreateEnabled()
	if opts.Push != nil {
		push = *opts.Push
	}
	if push {
		l.Printf("Pushing branch %q to %s...\n", branch, s.Config.Remote)
		if err := git.PushBranch(ctx, worktreePath, s.Config.Remote, branch, true); err != nil {
			l.Warnf("failed to push branch: %v", err)
		}
	}

	if !opts.NoInit {
		if err := s.runInitHook(ctx, rec, opts.StrictInit); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// resolveBase ensures the base branch exists locally, fetching it from
// the remote if needed.
func (s *Session) resolveBase(ctx context.Context, base string) error {
	if git.BranchExists(ctx, s.RepoRoot, base) {
		return nil
	}
	log.FromContext(ctx).Printf("Fetching base branch %q from %s...\n", base, s.Config.Remote)
	if !git.FetchBranch(ctx, s.RepoRoot, s.Config.Remote, base) {
		return wterr.BaseBranchNotFound(base)
	}
	return nil
}

// runInitHook runs the configured init command for a freshly created
// worktree. In strict mode a failing hook tears the worktree, branch,
// and record down again and reports the failure; otherwise a failure is
// only warned about.
func (s *Session) runInitHook(ctx context.Context, rec *state.Record, strict bool) error {
	l := log.FromContext(ctx)
	wtRoot := filepath.Join(s.RepoRoot, ".wt")
	script := hook.Resolve(s.Config.InitCommand, wtRoot)
	if script == "" {
		return nil
	}

	hctx := hook.Context{
		WTRoot:       wtRoot,
		RepoRoot:     s.RepoRoot,
		WorktreePath: rec.Path,
		FeatureName:  rec.FeatureName,
		Branch:       rec.Branch,
		BaseBranch:   rec.Base,
		BasePath:     s.RepoRoot,
	}
	err := hook.Run(ctx, hctx, script)
	if err == nil {
		return nil
	}
	if !strict {
		l.Warnf("init hook failed: %v", err)
		return nil
	}

	l.Printf("Cleaning up failed worktree...\n")
	if rerr := git.RemoveWorktree(ctx, s.RepoRoot, rec.Path, true); rerr != nil {
		l.Warnf("rollback: failed to remove worktree: %v", rerr)
	}
	if derr := git.DeleteBranch(ctx, s.RepoRoot, rec.Branch, true); derr != nil {
		l.Warnf("rollback: failed to delete branch: %v", derr)
	}
	s.State.RemoveByPath(rec.Path)
	if serr := s.SaveState(); serr != nil {
		l.Warnf("rollback: failed to save registry: %v", serr)
	}
	return &wterr.Error{
		Kind:       wterr.KindFailure,
		Message:    "init hook failed: " + err.Error(),
		Suggestion: "Fix the init command or rerun without --strict-init.",
	}
}
