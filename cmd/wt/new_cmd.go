package main

import (
	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/workflow"
)

func newNewCmd() *cobra.Command {
	var (
		base        string
		push        bool
		noPush      bool
		noCompanion bool
		noInit      bool
		strictInit  bool
	)

	cmd := &cobra.Command{
		Use:   "new <feature>",
		Short: "Create a worktree for a new feature",
		Long: `Create a new worktree with a fresh feature branch.

The feature name is normalized (lowercased, whitespace becomes dashes)
and prefixed with the configured branch prefix. The worktree is forked
from the base branch and recorded in the registry, then the init hook
runs and the companion tool launches.`,
		Example: `  wt new login-form              # feature/login-form from develop
  wt new hotfix --base main      # Fork from main instead
  wt new api --no-companion      # Skip launching the companion tool`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}

			opts := workflow.CreateOptions{
				FeatureName: args[0],
				Base:        base,
				NoInit:      noInit,
				StrictInit:  strictInit,
			}
			if cmd.Flags().Changed("push") {
				opts.Push = &push
			} else if noPush {
				f := false
				opts.Push = &f
			}

			rec, err := s.Create(ctx, opts)
			if err != nil {
				return err
			}

			p.Printf("Created worktree: %s\n", rec.Path)
			p.Printf("Branch: %s\n", rec.Branch)

			if !noCompanion {
				s.LaunchCompanion(ctx, rec.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "Base branch to fork from")
	cmd.Flags().BoolVar(&push, "push", false, "Push the new branch to the remote")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Don't push the new branch to the remote")
	cmd.Flags().BoolVar(&noCompanion, "no-companion", false, "Don't launch the companion tool")
	cmd.Flags().BoolVar(&noInit, "no-init", false, "Skip the init hook")
	cmd.Flags().BoolVar(&strictInit, "strict-init", false, "Roll the worktree back if the init hook fails")
	cmd.MarkFlagsMutuallyExclusive("push", "no-push")

	return cmd
}
