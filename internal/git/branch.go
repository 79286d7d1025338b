package git

import "context"

// DeleteBranch deletes a local branch.
func DeleteBranch(ctx context.Context, dir, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return runGit(ctx, dir, "branch", flag, branch)
}

// DeleteRemoteBranch deletes a branch on the given remote.
func DeleteRemoteBranch(ctx context.Context, dir, remote, branch string) error {
	return runGit(ctx, dir, "push", remote, "--delete", branch)
}

// PushBranch pushes a branch to the remote, optionally setting the
// upstream.
func PushBranch(ctx context.Context, dir, remote, branch string, setUpstream bool) error {
	if setUpstream {
		return runGit(ctx, dir, "push", "-u", remote, branch)
	}
	return runGit(ctx, dir, "push", remote, branch)
}

// CheckoutBranch switches the checkout at dir to the given branch.
func CheckoutBranch(ctx context.Context, dir, branch string) error {
	return runGit(ctx, dir, "checkout", branch)
}

// MergeBranch merges branch into the current branch at dir, honoring
// the fast-forward policy flags. Callers must reject noFF+ffOnly before
// any repository mutation.
func MergeBranch(ctx context.Context, dir, branch string, noFF, ffOnly bool) error {
	args := []string{"merge"}
	if noFF {
		args = append(args, "--no-ff")
	}
	if ffOnly {
		args = append(args, "--ff-only")
	}
	args = append(args, branch)
	return runGit(ctx, dir, args...)
}

// StageAll stages all changes in the checkout at dir.
func StageAll(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "add", "-A")
}

// Commit records a commit with the given message at dir.
func Commit(ctx context.Context, dir, message string) error {
	return runGit(ctx, dir, "commit", "-m", message)
}
