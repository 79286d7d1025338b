package workflow

import (
	"context"
	"os"
	"path/filepath"

	"github.com/birkelund/wt/internal/config"
	"github.com/birkelund/wt/internal/log"
)

// InitOptions carries the wt init flag overrides. Nil pointers leave
// the existing (or default) value untouched.
type InitOptions struct {
	BranchPrefix  *string
	BaseBranch    *string
	Remote        *string
	WorktreesDir  *string
	CompanionTool *string
	InitCommand   *string
	Hook          bool // write a starter .wt/hooks/init.sh
	Force         bool // overwrite existing config and hook
}

const starterHook = `#!/bin/sh
# wt init hook
set -e

echo "wt: setting up $WT_FEAT_NAME in $WT_WORKTREE_PATH (base=$WT_BASE_BRANCH)"

# Example: install deps
# npm install
`

func (o InitOptions) hasOverrides() bool {
	return o.BranchPrefix != nil || o.BaseBranch != nil || o.Remote != nil ||
		o.WorktreesDir != nil || o.CompanionTool != nil || o.InitCommand != nil
}

// Init writes the repository configuration, creates the worktrees
// directory, and optionally drops a starter hook script. Rerunning
// without overrides or --force is a no-op beyond repairing the
// .gitignore. Returns true when already initialized and untouched.
func (s *Session) Init(ctx context.Context, opts InitOptions) (already bool, err error) {
	cfgPath := config.Path(s.RepoRoot)
	_, statErr := os.Stat(cfgPath)
	exists := statErr == nil

	if exists && !opts.Force && !opts.hasOverrides() && !opts.Hook {
		if err := config.EnsureWorktreesGitignore(s.RepoRoot); err != nil {
			return false, err
		}
		return true, nil
	}

	cfg := s.Config
	if !exists || opts.Force {
		// Start over from the effective defaults, discarding any
		// previously saved repo config.
		base := config.Default()
		if user, uerr := config.LoadUserDefaults(); uerr == nil {
			base = user.Apply(base)
		} else {
			log.FromContext(ctx).Warnf("ignoring user config: %v", uerr)
		}
		cfg = base
	}

	if opts.BranchPrefix != nil {
		cfg.BranchPrefix = *opts.BranchPrefix
	}
	if opts.BaseBranch != nil {
		cfg.BaseBranch = *opts.BaseBranch
	}
	if opts.Remote != nil {
		cfg.Remote = *opts.Remote
	}
	if opts.WorktreesDir != nil {
		cfg.WorktreesDir = *opts.WorktreesDir
	}
	if opts.CompanionTool != nil {
		cfg.DefaultCompanionTool = *opts.CompanionTool
	}
	if opts.InitCommand != nil {
		cfg.InitCommand = *opts.InitCommand
	}

	if err := cfg.Save(cfgPath); err != nil {
		return false, err
	}
	s.Config = cfg
	if err := config.EnsureWorktreesGitignore(s.RepoRoot); err != nil {
		return false, err
	}
	if err := os.MkdirAll(cfg.WorktreesPath(s.RepoRoot), 0o755); err != nil {
		return false, err
	}

	if opts.Hook {
		hooksDir := filepath.Join(config.Dir(s.RepoRoot), "hooks")
		if err := os.MkdirAll(hooksDir, 0o755); err != nil {
			return false, err
		}
		hookPath := filepath.Join(hooksDir, "init.sh")
		if _, herr := os.Stat(hookPath); os.IsNotExist(herr) || opts.Force {
			if err := os.WriteFile(hookPath, []byte(starterHook), 0o755); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}
