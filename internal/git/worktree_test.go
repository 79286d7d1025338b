package git

import "testing"

func TestParseWorktreeList(t *testing.T) {
	t.Parallel()

	out := `worktree /home/user/project
HEAD 1234567890abcdef1234567890abcdef12345678
branch refs/heads/develop

worktree /home/user/project/.wt/worktrees/login-form
HEAD abcdef1234567890abcdef1234567890abcdef12
branch refs/heads/feature/login-form

worktree /home/user/detached-checkout
HEAD fedcba0987654321fedcba0987654321fedcba09
detached
`

	got := parseWorktreeList(out)
	if len(got) != 3 {
		t.Fatalf("expected 3 worktrees, got %d: %+v", len(got), got)
	}

	if got[0].Path != "/home/user/project" || got[0].Branch != "develop" {
		t.Errorf("main worktree parsed as %+v", got[0])
	}
	if got[1].Branch != "feature/login-form" {
		t.Errorf("feature worktree parsed as %+v", got[1])
	}
	if !got[2].Detached || got[2].Branch != "" {
		t.Errorf("detached worktree parsed as %+v", got[2])
	}
}

func TestParseWorktreeListBare(t *testing.T) {
	t.Parallel()

	out := "worktree /srv/repo.git\nbare\n"
	got := parseWorktreeList(out)
	if len(got) != 1 || !got[0].Bare {
		t.Errorf("bare repo parsed as %+v", got)
	}
}

func TestParseWorktreeListEmpty(t *testing.T) {
	t.Parallel()

	if got := parseWorktreeList(""); len(got) != 0 {
		t.Errorf("empty output parsed as %+v", got)
	}
}

func TestParseWorktreeListNoTrailingNewline(t *testing.T) {
	t.Parallel()

	out := "worktree /a\nbranch refs/heads/x\n\nworktree /b\nbranch refs/heads/y"
	got := parseWorktreeList(out)
	if len(got) != 2 || got[1].Path != "/b" || got[1].Branch != "y" {
		t.Errorf("parsed as %+v", got)
	}
}
