package git

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// IsDirty reports whether the checkout at dir has uncommitted changes
// or untracked files.
func IsDirty(ctx context.Context, dir string) (bool, error) {
	out, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// HasUnpushedCommits reports whether the checkout at dir has commits
// not present on its upstream. A branch without an upstream counts as
// unpushed: nothing on the remote holds those commits.
func HasUnpushedCommits(ctx context.Context, dir string) bool {
	out, err := outputGit(ctx, dir, "rev-list", "@{u}..HEAD", "--count")
	if err != nil {
		return true
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return true
	}
	return count > 0
}

// AheadBehind returns the commit counts by which the checkout at dir is
// ahead of and behind its upstream. Without an upstream both are zero.
func AheadBehind(ctx context.Context, dir string) (ahead, behind int) {
	out, err := outputGit(ctx, dir, "rev-list", "--left-right", "--count", "@{u}...HEAD")
	if err != nil {
		return 0, 0
	}
	// Output is "<behind>\t<ahead>": left side counts commits only on
	// the upstream, right side commits only on HEAD.
	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) != 2 {
		return 0, 0
	}
	behind, _ = strconv.Atoi(fields[0])
	ahead, _ = strconv.Atoi(fields[1])
	return ahead, behind
}

// UpstreamBranch returns the upstream ref of the current branch at dir,
// or empty if none is configured.
func UpstreamBranch(ctx context.Context, dir string) string {
	out, err := outputGit(ctx, dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// LastCommitTime returns the committer timestamp of HEAD at dir.
func LastCommitTime(ctx context.Context, dir string) (time.Time, error) {
	out, err := outputGit(ctx, dir, "log", "-1", "--format=%cI")
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, strings.TrimSpace(string(out)))
}

// IsBranchMergedInto reports whether branch is fully contained in base.
func IsBranchMergedInto(ctx context.Context, dir, branch, base string) bool {
	return runGit(ctx, dir, "merge-base", "--is-ancestor", branch, base) == nil
}
