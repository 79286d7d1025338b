package workflow

import (
	"context"

	"github.com/birkelund/wt/internal/gh"
	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/wterr"
)

// PROptions controls wt pr.
type PROptions struct {
	Base   string // overrides the record/config base when set
	Title  string
	Body   string
	Draft  bool
	NoPush bool // require an existing upstream instead of pushing
}

// OpenPR creates a pull request for the branch checked out in dir. A
// dirty working tree is auto-committed first when the autoCommit policy
// allows it; the branch is pushed with an upstream unless it already
// has one.
func (s *Session) OpenPR(ctx context.Context, dir string, opts PROptions) (string, error) {
	l := log.FromContext(ctx)

	if err := gh.CheckInstalled(); err != nil {
		return "", err
	}

	branch, err := git.CurrentBranch(ctx, dir)
	if err != nil {
		return "", err
	}

	base := opts.Base
	if base == "" {
		if rec := s.State.FindByBranch(branch); rec != nil {
			base = rec.Base
		}
	}
	if base == "" {
		base = s.Config.BaseBranch
	}

	dirty, err := git.IsDirty(ctx, dir)
	if err != nil {
		return "", err
	}
	if dirty {
		if !s.Config.AutoCommitEnabled() {
			return "", wterr.UncommittedChanges()
		}
		l.Printf("Auto-committing uncommitted changes...\n")
		if err := git.StageAll(ctx, dir); err != nil {
			return "", err
		}
		if err := git.Commit(ctx, dir, "implement: "+branch); err != nil {
			return "", err
		}
	}

	upstream := git.UpstreamBranch(ctx, dir)
	if opts.NoPush {
		if upstream == "" {
			return "", wterr.Usage("branch has no upstream set",
				"Run without --no-push to set the upstream.")
		}
	} else if upstream == "" {
		l.Printf("Pushing branch %q to %s...\n", branch, s.Config.Remote)
		if err := git.PushBranch(ctx, dir, s.Config.Remote, branch, true); err != nil {
			return "", err
		}
	}

	l.Printf("Creating pull request...\n")
	url, err := gh.CreatePR(ctx, dir, gh.PROptions{
		Base:  base,
		Head:  branch,
		Title: opts.Title,
		Body:  opts.Body,
		Draft: opts.Draft,
		Fill:  opts.Title == "",
	})
	if err != nil {
		// gh refuses when a PR for the branch is already open.
		if existing := gh.ViewPRURL(ctx, dir, branch); existing != "" {
			l.Printf("Pull request already exists.\n")
			return existing, nil
		}
		return "", err
	}
	return url, nil
}
