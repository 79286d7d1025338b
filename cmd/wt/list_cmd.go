package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/format"
	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/ui"
	"github.com/birkelund/wt/internal/workflow"
	"github.com/birkelund/wt/internal/wterr"
)

// listEntry is the JSON projection of one worktree for wt list --json.
type listEntry struct {
	FeatureName string `json:"featureName"`
	Branch      string `json:"branch"`
	Path        string `json:"path"`
	Base        string `json:"base"`
	CreatedAt   string `json:"createdAt"`
	Exists      bool   `json:"exists"`
	Dirty       bool   `json:"dirty"`
	Ahead       int    `json:"ahead"`
	Behind      int    `json:"behind"`
	LastCommit  string `json:"lastCommit,omitempty"`
}

func newListCmd() *cobra.Command {
	var (
		all    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List managed worktrees",
		Long: `List all managed worktrees with their working-tree status, sync
state against upstream, and last activity.

With --all, remote branches not tracked by any worktree are appended.`,
		Example: `  wt list
  wt list --all                  # Include untracked remote branches
  wt list --json | jq '.[].path'`,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}
			if len(s.State.Worktrees) == 0 && !all {
				if asJSON {
					p.Println("[]")
					return nil
				}
				return wterr.NoWorktrees()
			}

			if asJSON {
				entries := make([]listEntry, 0, len(s.State.Worktrees))
				for i := range s.State.Worktrees {
					rec := &s.State.Worktrees[i]
					st := s.Inspect(ctx, rec)
					e := listEntry{
						FeatureName: rec.FeatureName,
						Branch:      rec.Branch,
						Path:        rec.Path,
						Base:        rec.Base,
						CreatedAt:   rec.CreatedAt,
						Exists:      st.Exists,
						Dirty:       st.Dirty,
						Ahead:       st.Ahead,
						Behind:      st.Behind,
					}
					if !st.LastCommit.IsZero() {
						e.LastCommit = st.LastCommit.Format(time.RFC3339)
					}
					entries = append(entries, e)
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				p.Println(string(data))
				return nil
			}

			headers := []string{"NAME", "BRANCH", "STATUS", "SYNC", "ACTIVITY"}
			var rows [][]string
			tracked := make(map[string]bool)
			for i := range s.State.Worktrees {
				rec := &s.State.Worktrees[i]
				tracked[rec.Branch] = true
				st := s.Inspect(ctx, rec)

				status := "missing"
				sync := "-"
				activity := "-"
				if st.Exists {
					if st.Dirty {
						status = "dirty"
					} else {
						status = "clean"
					}
					sync = formatAheadBehind(st.Ahead, st.Behind)
					activity = format.RelativeTime(st.LastCommit)
				}
				rows = append(rows, []string{rec.FeatureName, rec.Branch, status, sync, activity})
			}

			if all {
				remote, err := git.ListRemoteBranches(ctx, s.RepoRoot, s.Config.Remote)
				if err != nil {
					log.FromContext(ctx).Warnf("failed to list remote branches: %v", err)
				}
				for _, branch := range remote {
					if !tracked[branch] {
						rows = append(rows, []string{"-", branch, "remote", "-", "-"})
					}
				}
			}

			p.Print(ui.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also show remote branches not tracked locally")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// formatAheadBehind renders the upstream divergence compactly.
func formatAheadBehind(ahead, behind int) string {
	if ahead == 0 && behind == 0 {
		return "-"
	}
	var parts []string
	if ahead > 0 {
		parts = append(parts, fmt.Sprintf("+%d", ahead))
	}
	if behind > 0 {
		parts = append(parts, fmt.Sprintf("-%d", behind))
	}
	return strings.Join(parts, " ")
}
