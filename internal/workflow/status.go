package workflow

import (
	"context"
	"time"

	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/state"
)

// Status is a read-only projection of one worktree's repository state.
type Status struct {
	Exists     bool
	Dirty      bool
	Ahead      int
	Behind     int
	LastCommit time.Time
	Merged     bool // branch is an ancestor of its base
}

// Inspect gathers the live status for a record. Probe failures degrade
// to zero values rather than failing the whole listing.
func (s *Session) Inspect(ctx context.Context, rec *state.Record) Status {
	var st Status
	st.Exists = pathExists(rec.Path)
	if !st.Exists {
		return st
	}

	if dirty, err := git.IsDirty(ctx, rec.Path); err == nil {
		st.Dirty = dirty
	}
	st.Ahead, st.Behind = git.AheadBehind(ctx, rec.Path)
	if t, err := git.LastCommitTime(ctx, rec.Path); err == nil {
		st.LastCommit = t
	}
	st.Merged = git.IsBranchMergedInto(ctx, s.RepoRoot, rec.Branch, rec.Base)
	return st
}
