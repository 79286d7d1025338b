// Package workflow is the lifecycle orchestrator: it sequences branch
// and worktree operations, keeps the registry in step with the
// repository, and enforces the safety gates before destructive
// operations. Commands open a Session, call one operation, and exit;
// there is no state shared across invocations beyond the files in .wt/.
package workflow

import (
	"context"
	"os"

	"github.com/birkelund/wt/internal/config"
	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/state"
	"github.com/birkelund/wt/internal/wterr"
)

// Session is one command invocation's view of a repository: its root,
// effective configuration, and freshly loaded registry.
type Session struct {
	RepoRoot string
	Config   config.Config
	State    *state.State

	statePath string
}

// Open locates the enclosing repository, loads configuration (built-in
// defaults, user-level defaults, then the repository file) and the
// registry, and reconciles the registry against live worktrees.
// Reconciliation is best effort and never fails the open.
func Open(ctx context.Context) (*Session, error) {
	root, err := git.RepoRoot(ctx, "")
	if err != nil {
		return nil, err
	}
	if git.IsBareRepo(ctx, root) {
		return nil, wterr.NotInGitRepo()
	}

	base := config.Default()
	user, err := config.LoadUserDefaults()
	if err != nil {
		log.FromContext(ctx).Warnf("ignoring user config: %v", err)
	} else {
		base = user.Apply(base)
	}
	cfg, err := config.Load(config.Path(root), base)
	if err != nil {
		return nil, err
	}

	st, err := state.Load(state.Path(root))
	if err != nil {
		return nil, err
	}

	s := &Session{
		RepoRoot:  root,
		Config:    cfg,
		State:     st,
		statePath: state.Path(root),
	}
	s.Reconcile(ctx)
	return s, nil
}

// SaveState persists the registry.
func (s *Session) SaveState() error {
	return s.State.Save(s.statePath)
}

// Reconcile drops registry records whose path no longer corresponds to
// a live worktree. Probe failures are logged and swallowed: a transient
// git error must not make every command unusable.
func (s *Session) Reconcile(ctx context.Context) {
	l := log.FromContext(ctx)
	worktrees, err := git.ListWorktrees(ctx, s.RepoRoot)
	if err != nil {
		l.Warnf("failed to sync registry: %v", err)
		return
	}
	live := make([]string, 0, len(worktrees))
	for _, wt := range worktrees {
		live = append(live, wt.Path)
	}
	if s.State.Prune(live) {
		if err := s.SaveState(); err != nil {
			l.Warnf("failed to sync registry: %v", err)
		}
	}
}

// EnsureInitialized writes the repository config file and .wt/.gitignore
// if they do not exist yet, so worktree-creating commands work without a
// prior wt init.
func (s *Session) EnsureInitialized() error {
	cfg, err := config.Ensure(s.RepoRoot, s.Config)
	if err != nil {
		return err
	}
	s.Config = cfg
	return config.EnsureWorktreesGitignore(s.RepoRoot)
}

// pathExists reports whether a worktree path is present on disk.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
