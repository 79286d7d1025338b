package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/workflow"
)

func newPathCmd() *cobra.Command {
	var copyFlag bool

	cmd := &cobra.Command{
		Use:   "path [name]",
		Short: "Print the path of a managed worktree",
		Long: `Print the filesystem path of a managed worktree.

Without a name, an interactive selection is shown (the prompt renders
on stderr, so the output stays usable in command substitution).`,
		Example: `  cd "$(wt path login-form)"
  wt path login-form --copy      # Copy the path to the clipboard`,
		Args: cobra.MaximumNArgs(1),
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
			rec, err := resolveTarget(ctx, s, explicit, "path")
			if err != nil {
				return err
			}

			p.Println(rec.Path)
			if copyFlag {
				if err := clipboard.WriteAll(rec.Path); err != nil {
					log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}
