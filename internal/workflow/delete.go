package workflow

import (
	"context"

	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/state"
	"github.com/birkelund/wt/internal/wterr"
)

// DeleteOptions controls wt delete.
type DeleteOptions struct {
	Force        bool // skip the dirty/unpushed gates
	DeleteRemote bool // also delete the branch on the remote
}

// Delete tears down a worktree and its branch. A record whose path is
// missing from disk is stale: safety gates are skipped, removal is best
// effort, and the registry is cleaned up regardless. The registry
// record is removed last, after local teardown succeeded, so a failed
// teardown never orphans a live branch.
func (s *Session) Delete(ctx context.Context, rec *state.Record, opts DeleteOptions) (stale bool, err error) {
	l := log.FromContext(ctx)
	stale = !pathExists(rec.Path)

	if stale {
		l.Warnf("worktree path %q not found on disk, treating as stale entry", rec.Path)
	} else if !opts.Force {
		dirty, derr := git.IsDirty(ctx, rec.Path)
		if derr != nil {
			return stale, derr
		}
		if dirty {
			return stale, wterr.UncommittedChanges()
		}
		if git.HasUnpushedCommits(ctx, rec.Path) {
			return stale, wterr.UnpushedCommits()
		}
	}

	l.Printf("Removing worktree at %s...\n", rec.Path)
	if rerr := git.RemoveWorktree(ctx, s.RepoRoot, rec.Path, opts.Force); rerr != nil {
		if !stale {
			return stale, rerr
		}
		l.Warnf("could not remove worktree (path missing): %v", rerr)
		if perr := git.PruneWorktrees(ctx, s.RepoRoot); perr != nil {
			l.Warnf("worktree prune failed: %v", perr)
		}
	}

	l.Printf("Deleting branch %q...\n", rec.Branch)
	if derr := git.DeleteBranch(ctx, s.RepoRoot, rec.Branch, opts.Force); derr != nil {
		if !stale {
			return stale, derr
		}
		l.Warnf("could not delete branch: %v", derr)
	}

	if opts.DeleteRemote {
		if !git.RemoteExists(ctx, s.RepoRoot, s.Config.Remote) {
			l.Warnf("remote %q not configured, skipping remote branch deletion", s.Config.Remote)
		} else {
			l.Printf("Deleting remote branch %q...\n", rec.Branch)
			if rerr := git.DeleteRemoteBranch(ctx, s.RepoRoot, s.Config.Remote, rec.Branch); rerr != nil {
				l.Warnf("failed to delete remote branch: %v", rerr)
			}
		}
	}

	s.State.RemoveByPath(rec.Path)
	if serr := s.SaveState(); serr != nil {
		return stale, serr
	}
	return stale, nil
}
