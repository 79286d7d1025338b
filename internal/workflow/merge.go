package workflow

import (
	"context"

	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/state"
	"github.com/birkelund/wt/internal/wterr"
)

// MergeOptions controls wt merge.
type MergeOptions struct {
	Base   string // overrides the record's base branch when set
	Push   *bool  // push the base branch after merging; nil uses the default (off)
	Force  bool   // skip auto-commit, force worktree/branch removal
	NoFF   bool
	FFOnly bool
}

// Merge folds the worktree's branch into its base branch, then tears
// the worktree down. Flag validation happens before any mutation. A
// dirty working tree is auto-committed unless force is set or the
// autoCommit policy is disabled, in which case uncommitted changes are
// an error (respectively discarded under force).
func (s *Session) Merge(ctx context.Context, rec *state.Record, opts MergeOptions) error {
	l := log.FromContext(ctx)

	if opts.NoFF && opts.FFOnly {
		return wterr.Usage("cannot use --no-ff and --ff-only together", "")
	}

	baseBranch := opts.Base
	if baseBranch == "" {
		baseBranch = rec.Base
	}
	if baseBranch == "" {
		baseBranch = s.Config.BaseBranch
	}

	if !opts.Force {
		dirty, err := git.IsDirty(ctx, rec.Path)
		if err != nil {
			return err
		}
		if dirty {
			if !s.Config.AutoCommitEnabled() {
				return wterr.UncommittedChanges()
			}
			l.Printf("Auto-committing uncommitted changes...\n")
			if err := git.StageAll(ctx, rec.Path); err != nil {
				return err
			}
			if err := git.Commit(ctx, rec.Path, "implement: "+rec.Branch); err != nil {
				return err
			}
		}
	}

	if err := s.resolveBase(ctx, baseBranch); err != nil {
		return err
	}

	l.Printf("Checking out %q...\n", baseBranch)
	if err := git.CheckoutBranch(ctx, s.RepoRoot, baseBranch); err != nil {
		return err
	}
	l.Printf("Merging %q into %q...\n", rec.Branch, baseBranch)
	if err := git.MergeBranch(ctx, s.RepoRoot, rec.Branch, opts.NoFF, opts.FFOnly); err != nil {
		return err
	}

	if opts.Push != nil && *opts.Push {
		l.Printf("Pushing %q to %s...\n", baseBranch, s.Config.Remote)
		if err := git.PushBranch(ctx, s.RepoRoot, s.Config.Remote, baseBranch, false); err != nil {
			l.Warnf("failed to push base branch: %v", err)
		}
	}

	// The branch is merged now; teardown is unconditional.
	l.Printf("Removing worktree at %s...\n", rec.Path)
	if err := git.RemoveWorktree(ctx, s.RepoRoot, rec.Path, true); err != nil {
		return err
	}
	l.Printf("Deleting branch %q...\n", rec.Branch)
	if err := git.DeleteBranch(ctx, s.RepoRoot, rec.Branch, true); err != nil {
		return err
	}

	s.State.RemoveByPath(rec.Path)
	return s.SaveState()
}
