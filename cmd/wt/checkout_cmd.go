package main

import (
	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/workflow"
)

func newCheckoutCmd() *cobra.Command {
	var (
		printPath  bool
		companion  bool
		noInit     bool
		strictInit bool
	)

	cmd := &cobra.Command{
		Use:   "checkout <branch>",
		Short: "Check out an existing branch into a worktree",
		Long: `Check out an existing branch into its own worktree.

If the branch is already checked out somewhere, the existing path is
reported and nothing changes. Branches not present locally are fetched
from the configured remote first.`,
		Example: `  wt checkout feature/login-form
  wt checkout feature/login-form -p      # Print only the path (for cd "$(...)")
  wt checkout bugfix/crash --companion   # Launch the companion tool afterwards`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"co"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}

			rec, created, err := s.Checkout(ctx, workflow.CheckoutOptions{
				Branch:     args[0],
				NoInit:     noInit,
				StrictInit: strictInit,
			})
			if err != nil {
				return err
			}

			switch {
			case printPath:
				p.Println(rec.Path)
			case created:
				p.Printf("Created worktree: %s\n", rec.Path)
			default:
				p.Printf("Branch already in worktree: %s\n", rec.Path)
			}

			if companion {
				s.LaunchCompanion(ctx, rec.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&printPath, "print-path", "p", false, "Print only the worktree path")
	cmd.Flags().BoolVar(&companion, "companion", false, "Launch the companion tool after checkout")
	cmd.Flags().BoolVar(&noInit, "no-init", false, "Skip the init hook")
	cmd.Flags().BoolVar(&strictInit, "strict-init", false, "Roll the worktree back if the init hook fails")

	return cmd
}
