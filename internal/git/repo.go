// Package git wraps the external git CLI: read-only probes for the
// lifecycle orchestrator plus thin mutation primitives. wt never
// inspects repository internals directly.
package git

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/birkelund/wt/internal/wterr"
)

// RepoRoot returns the root of the main repository, whether dir is in
// the main checkout or a linked worktree. Uses --git-common-dir so all
// worktrees of a repository resolve to the same root.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", wterr.NotInGitRepo()
	}
	common := strings.TrimSpace(string(out))
	if !filepath.IsAbs(common) {
		base := dir
		if base == "" {
			base = "."
		}
		if abs, err := filepath.Abs(filepath.Join(base, common)); err == nil {
			common = abs
		}
	}
	common = filepath.Clean(common)
	if filepath.Base(common) == ".git" {
		return filepath.Dir(common), nil
	}
	return common, nil
}

// WorktreeRoot returns the top-level directory of the checkout
// containing dir (the worktree root, not the main repo root).
func WorktreeRoot(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", wterr.NotInGitRepo()
	}
	return strings.TrimSpace(string(out)), nil
}

// IsBareRepo reports whether the repository at dir is bare. Bare
// repositories have no working tree and cannot host wt worktrees.
func IsBareRepo(ctx context.Context, dir string) bool {
	out, err := outputGit(ctx, dir, "rev-parse", "--is-bare-repository")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// CurrentBranch returns the current branch name of the checkout at dir.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// BranchExists reports whether a local branch exists.
func BranchExists(ctx context.Context, dir, branch string) bool {
	return runGit(ctx, dir, "rev-parse", "--verify", "refs/heads/"+branch) == nil
}

// RemoteExists reports whether the named remote is configured.
func RemoteExists(ctx context.Context, dir, remote string) bool {
	return runGit(ctx, dir, "remote", "get-url", remote) == nil
}

// FetchBranch materializes a remote branch as a local branch
// (fetch <remote> <branch>:<branch>). Reports success rather than
// failing, so callers can distinguish "not found" from usage errors.
func FetchBranch(ctx context.Context, dir, remote, branch string) bool {
	return runGit(ctx, dir, "fetch", remote, branch+":"+branch) == nil
}

// ListRemoteBranches returns the branch names known on the given remote,
// stripped of the "<remote>/" prefix. HEAD pointers are skipped.
func ListRemoteBranches(ctx context.Context, dir, remote string) ([]string, error) {
	out, err := outputGit(ctx, dir, "branch", "-r", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}

	prefix := remote + "/"
	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || strings.Contains(name, "HEAD") {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			branches = append(branches, strings.TrimPrefix(name, prefix))
		}
	}
	return branches, nil
}
