package main

import (
	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/workflow"
)

func newMergeCmd() *cobra.Command {
	var (
		base   string
		push   bool
		noPush bool
		force  bool
		noFF   bool
		ffOnly bool
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge the current worktree branch into its base, then delete it",
		Long: `Merge the current worktree's branch into its base branch, then
remove the worktree and delete the branch.

Must be run from inside a worktree. Uncommitted changes are committed
first (unless autoCommit is disabled or --force is given, in which case
they are discarded).`,
		Example: `  wt merge                       # Merge into the recorded base branch
  wt merge --base main --push    # Merge into main and push it
  wt merge --ff-only             # Refuse unless fast-forward is possible`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}
			rec, err := requireWorktree(ctx, s)
			if err != nil {
				return err
			}
			branch := rec.Branch

			opts := workflow.MergeOptions{
				Base:   base,
				Force:  force,
				NoFF:   noFF,
				FFOnly: ffOnly,
			}
			if cmd.Flags().Changed("push") {
				opts.Push = &push
			} else if noPush {
				f := false
				opts.Push = &f
			}

			baseBranch := base
			if baseBranch == "" {
				baseBranch = rec.Base
			}
			if err := s.Merge(ctx, rec, opts); err != nil {
				return err
			}
			p.Printf("Merged and deleted worktree: %s -> %s\n", branch, baseBranch)
			return nil
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "Base branch to merge into")
	cmd.Flags().BoolVar(&push, "push", false, "Push the base branch after merging")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Don't push the base branch after merging")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Proceed even with uncommitted changes (may lose local changes)")
	cmd.Flags().BoolVar(&noFF, "no-ff", false, "Create a merge commit (disable fast-forward)")
	cmd.Flags().BoolVar(&ffOnly, "ff-only", false, "Refuse to merge unless fast-forward is possible")
	cmd.MarkFlagsMutuallyExclusive("push", "no-push")

	return cmd
}
