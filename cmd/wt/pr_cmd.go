package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/workflow"
	"github.com/birkelund/wt/internal/wterr"
)

func newPrCmd() *cobra.Command {
	var (
		base   string
		title  string
		body   string
		draft  bool
		noPush bool
	)

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Create a pull request for the current worktree",
		Long: `Create a pull request for the branch checked out in the current
worktree, using the GitHub CLI.

Uncommitted changes are committed first (unless autoCommit is disabled
in the config), and the branch is pushed with an upstream if it has
none yet.`,
		Example: `  wt pr                          # PR against the worktree's base branch
  wt pr --draft -t "WIP: login"  # Draft PR with an explicit title`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}
			if ambientFacts(ctx, s) == nil {
				return wterr.NotInWorktree()
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			url, err := s.OpenPR(ctx, cwd, workflow.PROptions{
				Base:   base,
				Title:  title,
				Body:   body,
				Draft:  draft,
				NoPush: noPush,
			})
			if err != nil {
				return err
			}
			p.Printf("Pull request created: %s\n", url)
			return nil
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "Base branch for the pull request")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Pull request title")
	cmd.Flags().StringVar(&body, "body", "", "Pull request body")
	cmd.Flags().BoolVarP(&draft, "draft", "d", false, "Create as draft")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Don't push; require an existing upstream")

	return cmd
}
