package main

import (
	"context"
	"os"

	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/resolve"
	"github.com/birkelund/wt/internal/state"
	"github.com/birkelund/wt/internal/ui"
	"github.com/birkelund/wt/internal/workflow"
	"github.com/birkelund/wt/internal/wterr"
)

// ambientFacts probes where the command is running. Returns nil when
// the current directory is the repository root itself (or the probe
// fails), meaning no ambient worktree applies.
func ambientFacts(ctx context.Context, s *workflow.Session) *resolve.Ambient {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	root, err := git.WorktreeRoot(ctx, cwd)
	if err != nil {
		return nil
	}
	if state.CanonicalPath(root) == state.CanonicalPath(s.RepoRoot) {
		return nil
	}
	branch, _ := git.CurrentBranch(ctx, cwd)
	return &resolve.Ambient{WorktreeRoot: root, CurrentBranch: branch}
}

// resolveTarget picks the record a command operates on, using an
// explicit identifier, the ambient worktree, or an interactive prompt.
func resolveTarget(ctx context.Context, s *workflow.Session, explicit, action string) (*state.Record, error) {
	return resolve.Target(s.State, resolve.Request{
		Explicit:    explicit,
		Ambient:     ambientFacts(ctx, s),
		Interactive: ui.IsInteractive(),
		Chooser:     ui.TerminalChooser{},
		Action:      action,
	})
}

// requireWorktree returns the record for the worktree the command runs
// in, for commands that must run from inside one.
func requireWorktree(ctx context.Context, s *workflow.Session) (*state.Record, error) {
	ambient := ambientFacts(ctx, s)
	if ambient == nil {
		return nil, wterr.NotInWorktree()
	}
	return resolve.Target(s.State, resolve.Request{
		Ambient:     ambient,
		Interactive: false,
	})
}
