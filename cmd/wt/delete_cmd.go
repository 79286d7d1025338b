package main

import (
	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/workflow"
)

func newDeleteCmd() *cobra.Command {
	var (
		force  bool
		remote bool
	)

	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a worktree and its branch",
		Long: `Delete a worktree and its local branch.

Without a name, the worktree you are currently in is deleted; from the
repository root an interactive selection is shown. Deletion is refused
when the worktree has uncommitted changes or unpushed commits, unless
--force is given. Records whose path has vanished from disk are cleaned
up without safety checks.`,
		Example: `  wt delete login-form           # Delete by feature name
  wt delete                      # Delete the current worktree
  wt delete old-feature -f -r    # Force, and delete the remote branch too`,
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"rm"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}

			explicit := ""
			if len(args) == 1 {
				explicit = args[0]
			}
			rec, err := resolveTarget(ctx, s, explicit, "delete")
			if err != nil {
				return err
			}
			branch := rec.Branch

			stale, err := s.Delete(ctx, rec, workflow.DeleteOptions{
				Force:        force,
				DeleteRemote: remote,
			})
			if err != nil {
				return err
			}
			if stale {
				p.Printf("Cleaned up stale worktree entry and deleted branch: %s\n", branch)
			} else {
				p.Printf("Deleted worktree and branch: %s\n", branch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even with uncommitted or unpushed changes")
	cmd.Flags().BoolVarP(&remote, "remote", "r", false, "Also delete the remote branch")

	return cmd
}
