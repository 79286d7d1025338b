package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/ui"
	"github.com/birkelund/wt/internal/workflow"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [name]",
		Short: "Show detailed status for a worktree",
		Long: `Show detailed status for one worktree: branch, base, working-tree
state, upstream sync, last commit, and whether the branch is already
merged into its base.

Without a name, the worktree you are currently in is inspected; from
the repository root an interactive selection is shown.`,
		Example: `  wt status login-form
  wt status                      # Status of the current worktree`,
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
			rec, err := resolveTarget(ctx, s, explicit, "status")
			if err != nil {
				return err
			}
			st := s.Inspect(ctx, rec)

			var b strings.Builder
			row := func(label, value string) {
				fmt.Fprintf(&b, "%-16s %s\n", label+":", value)
			}
			b.WriteString(ui.AccentStyle.Render(rec.FeatureName) + "\n")
			row("Branch", rec.Branch)
			row("Base", rec.Base)
			row("Path", rec.Path)
			if t := rec.CreatedTime(); !t.IsZero() {
				row("Created", t.Format("2006-01-02 15:04"))
			} else {
				row("Created", "-")
			}

			if !st.Exists {
				row("Status", ui.ErrorStyle.Render("path missing"))
				p.Print(b.String())
				return nil
			}

			if st.Dirty {
				row("Status", ui.ErrorStyle.Render("dirty"))
			} else {
				row("Status", "clean")
			}
			switch {
			case st.Ahead == 0 && st.Behind == 0:
				row("Sync", "in sync")
			default:
				var parts []string
				if st.Ahead > 0 {
					parts = append(parts, fmt.Sprintf("%d ahead", st.Ahead))
				}
				if st.Behind > 0 {
					parts = append(parts, fmt.Sprintf("%d behind", st.Behind))
				}
				row("Sync", strings.Join(parts, ", "))
			}
			if !st.LastCommit.IsZero() {
				row("Last commit", st.LastCommit.Local().Format("2006-01-02 15:04"))
			} else {
				row("Last commit", "-")
			}
			if st.Merged {
				row("Merged to base", ui.SuccessStyle.Render("merged"))
			} else {
				row("Merged to base", ui.MutedStyle.Render("not merged"))
			}

			p.Print(b.String())
			return nil
		},
	}

	return cmd
}
