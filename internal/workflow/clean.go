package workflow

import (
	"context"

	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/state"
)

// Candidate is one worktree eligible for bulk cleanup.
type Candidate struct {
	Record state.Record
	Reason string
}

// CleanCandidates returns the worktrees wt clean would remove: records
// whose path is missing, plus (when mergedOnly is set) worktrees whose
// branch is already merged into its base.
func (s *Session) CleanCandidates(ctx context.Context, mergedOnly bool) []Candidate {
	var out []Candidate
	for _, rec := range s.State.Worktrees {
		if !pathExists(rec.Path) {
			out = append(out, Candidate{Record: rec, Reason: "path missing"})
			continue
		}
		if !mergedOnly {
			continue
		}
		if git.IsBranchMergedInto(ctx, s.RepoRoot, rec.Branch, rec.Base) {
			reason := "merged"
			if dirty, err := git.IsDirty(ctx, rec.Path); err == nil && dirty {
				reason = "merged (has uncommitted)"
			}
			out = append(out, Candidate{Record: rec, Reason: reason})
		}
	}
	return out
}

// Clean removes the given candidates, forcing each teardown. Individual
// failures are warnings; the registry is saved once at the end. Returns
// the number of records removed.
func (s *Session) Clean(ctx context.Context, candidates []Candidate) (int, error) {
	l := log.FromContext(ctx)
	deleted := 0
	for _, c := range candidates {
		l.Printf("Removing %s...\n", c.Record.FeatureName)

		if pathExists(c.Record.Path) {
			if err := git.RemoveWorktree(ctx, s.RepoRoot, c.Record.Path, true); err != nil {
				l.Warnf("failed to clean %s: %v", c.Record.FeatureName, err)
				continue
			}
		} else if err := git.PruneWorktrees(ctx, s.RepoRoot); err != nil {
			l.Warnf("worktree prune failed: %v", err)
		}

		if err := git.DeleteBranch(ctx, s.RepoRoot, c.Record.Branch, true); err != nil {
			l.Warnf("could not delete branch %q: %v", c.Record.Branch, err)
		}

		s.State.RemoveByPath(c.Record.Path)
		deleted++
	}
	if err := s.SaveState(); err != nil {
		return deleted, err
	}
	return deleted, nil
}
