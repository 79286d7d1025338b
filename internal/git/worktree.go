package git

import (
	"context"
	"strings"
)

// WorktreeInfo is one entry from git worktree list --porcelain.
type WorktreeInfo struct {
	Path     string
	Branch   string // empty for bare/detached entries
	Bare     bool
	Detached bool
}

// ListWorktrees enumerates the repository's worktrees, including the
// main checkout.
func ListWorktrees(ctx context.Context, dir string) ([]WorktreeInfo, error) {
	out, err := outputGit(ctx, dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktreeList(string(out)), nil
}

// parseWorktreeList parses porcelain output: entries are separated by
// blank lines, each starting with "worktree <path>".
func parseWorktreeList(out string) []WorktreeInfo {
	var worktrees []WorktreeInfo
	var current WorktreeInfo
	flush := func() {
		if current.Path != "" {
			worktrees = append(worktrees, current)
		}
		current = WorktreeInfo{}
	}

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch refs/heads/"):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "bare":
			current.Bare = true
		case line == "detached":
			current.Detached = true
		}
	}
	flush()
	return worktrees
}

// AddWorktree creates a worktree at path with a new branch forked from base.
func AddWorktree(ctx context.Context, dir, path, branch, base string) error {
	return runGit(ctx, dir, "worktree", "add", "-b", branch, path, base)
}

// AddWorktreeExisting creates a worktree at path for an existing branch.
func AddWorktreeExisting(ctx context.Context, dir, path, branch string) error {
	return runGit(ctx, dir, "worktree", "add", path, branch)
}

// RemoveWorktree removes a worktree.
func RemoveWorktree(ctx context.Context, dir, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	return runGit(ctx, dir, args...)
}

// PruneWorktrees removes stale worktree administrative data.
func PruneWorktrees(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "worktree", "prune")
}
