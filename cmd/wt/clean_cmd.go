package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/ui"
	"github.com/birkelund/wt/internal/workflow"
	"github.com/birkelund/wt/internal/wterr"
)

func newCleanCmd() *cobra.Command {
	var (
		dryRun bool
		force  bool
		merged bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean up stale or merged worktrees",
		Long: `Remove worktrees whose path has vanished from disk and, with
--merged, worktrees whose branch is already merged into its base.

A confirmation is asked before anything is removed unless --force is
given; with --dry-run nothing is removed at all.`,
		Example: `  wt clean --dry-run             # Show what would be removed
  wt clean --merged              # Also remove merged worktrees
  wt clean --force               # No confirmation prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}
			if len(s.State.Worktrees) == 0 {
				p.Println("No worktrees to clean.")
				return nil
			}

			candidates := s.CleanCandidates(ctx, merged)
			if len(candidates) == 0 {
				p.Println("No worktrees eligible for cleanup.")
				return nil
			}

			headers := []string{"NAME", "BRANCH", "REASON"}
			rows := make([][]string, 0, len(candidates))
			for _, c := range candidates {
				rows = append(rows, []string{c.Record.FeatureName, c.Record.Branch, c.Reason})
			}
			p.Print(ui.RenderTable(headers, rows))

			if dryRun {
				p.Printf("Run without --dry-run to clean %d worktree(s).\n", len(candidates))
				return nil
			}

			if !force {
				if !ui.IsInteractive() {
					return wterr.Usage("cannot confirm cleanup without a terminal",
						"Use --force to clean without confirmation.")
				}
				res, err := ui.Confirm(fmt.Sprintf("Delete %d worktree(s)?", len(candidates)))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					p.Println("Cancelled.")
					return nil
				}
			}

			deleted, err := s.Clean(ctx, candidates)
			if err != nil {
				return err
			}
			p.Printf("Cleaned %d worktree(s).\n", deleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be removed without removing it")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVarP(&merged, "merged", "m", false, "Also remove worktrees merged into their base")

	return cmd
}
