package main

import (
	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/config"
	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/workflow"
)

func newInitCmd() *cobra.Command {
	var (
		branchPrefix  string
		base          string
		remote        string
		worktreesDir  string
		companionTool string
		initCommand   string
		hook          bool
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize wt in the current repository",
		Long: `Initialize wt in the current git repository.

Writes .wt/wt.json with the effective configuration and creates the
worktrees directory. Rerunning is safe; pass flags to change individual
settings, or --force to reset everything to defaults first.`,
		Example: `  wt init                        # Initialize with defaults
  wt init --base main            # Use main as the base branch
  wt init --hook                 # Also create a starter .wt/hooks/init.sh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := output.FromContext(ctx)

			s, err := workflow.Open(ctx)
			if err != nil {
				return err
			}

			opts := workflow.InitOptions{Hook: hook, Force: force}
			flags := cmd.Flags()
			if flags.Changed("branch-prefix") {
				opts.BranchPrefix = &branchPrefix
			}
			if flags.Changed("base") {
				opts.BaseBranch = &base
			}
			if flags.Changed("remote") {
				opts.Remote = &remote
			}
			if flags.Changed("worktrees-dir") {
				opts.WorktreesDir = &worktreesDir
			}
			if flags.Changed("companion-tool") {
				opts.CompanionTool = &companionTool
			}
			if flags.Changed("init-command") {
				opts.InitCommand = &initCommand
			}

			already, err := s.Init(ctx, opts)
			if err != nil {
				return err
			}
			if already {
				p.Printf("Already initialized: %s\n", config.Dir(s.RepoRoot))
				return nil
			}
			p.Printf("Initialized wt: %s\n", config.Dir(s.RepoRoot))
			return nil
		},
	}

	cmd.Flags().StringVar(&branchPrefix, "branch-prefix", "", "Branch prefix for feature branches")
	cmd.Flags().StringVarP(&base, "base", "b", "", "Base branch for new worktrees")
	cmd.Flags().StringVar(&remote, "remote", "", "Remote name for push/fetch")
	cmd.Flags().StringVar(&worktreesDir, "worktrees-dir", "", "Directory (relative to repo root) for worktrees")
	cmd.Flags().StringVar(&companionTool, "companion-tool", "", "Default companion tool to launch in new worktrees")
	cmd.Flags().StringVar(&initCommand, "init-command", "", "Command to run after creating or checking out a worktree")
	cmd.Flags().BoolVar(&hook, "hook", false, "Create a starter .wt/hooks/init.sh")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing wt config (and hook)")

	return cmd
}
