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

// CheckoutOptions controls wt checkout.
type CheckoutOptions struct {
	Branch     string
	NoInit     bool
	StrictInit bool
}

// Checkout materializes an existing branch into a worktree. When the
// branch is already checked out somewhere, the existing path is
// returned (created=false) and nothing changes. The branch is fetched
// from the remote if it does not exist locally. A strict hook failure
// removes the worktree and record again but keeps the pre-existing
// branch.
func (s *Session) Checkout(ctx context.Context, opts CheckoutOptions) (rec *state.Record, created bool, err error) {
	l := log.FromContext(ctx)

	if err := s.EnsureInitialized(); err != nil {
		return nil, false, err
	}

	worktrees, err := git.ListWorktrees(ctx, s.RepoRoot)
	if err != nil {
		return nil, false, err
	}
	for _, wt := range worktrees {
		if wt.Branch == opts.Branch {
			if existing := s.State.FindByPath(wt.Path); existing != nil {
				return existing, false, nil
			}
			// Checked out manually; report it without registering.
			return &state.Record{
				FeatureName: format.DeriveFeatureName(opts.Branch, s.Config.BranchPrefix),
				Branch:      opts.Branch,
				Path:        wt.Path,
				Base:        s.Config.BaseBranch,
			}, false, nil
		}
	}

	if !git.BranchExists(ctx, s.RepoRoot, opts.Branch) {
		l.Printf("Fetching branch %q from %s...\n", opts.Branch, s.Config.Remote)
		if !git.FetchBranch(ctx, s.RepoRoot, s.Config.Remote, opts.Branch) {
			return nil, false, wterr.BranchNotFound(opts.Branch)
		}
	}

	featName := format.DeriveFeatureName(opts.Branch, s.Config.BranchPrefix)
	worktreePath := filepath.Join(s.Config.WorktreesPath(s.RepoRoot), featName)
	if err := os.MkdirAll(filepath.Dir(worktreePath), 0o755); err != nil {
		return nil, false, err
	}
	if err := git.AddWorktreeExisting(ctx, s.RepoRoot, worktreePath, opts.Branch); err != nil {
		return nil, false, err
	}

	rec, err = s.State.Add(featName, opts.Branch, worktreePath, s.Config.BaseBranch)
	if err != nil {
		return nil, false, err
	}
	if err := s.SaveState(); err != nil {
		return nil, false, err
	}

	if !opts.NoInit {
		if err := s.runCheckoutHook(ctx, rec, opts.StrictInit); err != nil {
			return nil, false, err
		}
	}
	return rec, true, nil
}

// runCheckoutHook mirrors runInitHook but leaves the branch alone on
// rollback since checkout never created it.
func (s *Session) runCheckoutHook(ctx context.Context, rec *state.Record, strict bool) error {
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
