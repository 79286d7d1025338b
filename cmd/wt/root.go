package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birkelund/wt/internal/git"
	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/output"
	"github.com/birkelund/wt/internal/wterr"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wt",
	Short: "Feature-branch worktree workflow",
	Long: `wt manages git worktrees for feature-branch workflows.

Each feature gets its own branch and working directory. wt tracks them
in a per-repository registry (.wt/state.json), keeps the registry in
sync with the actual repository state, and tears both down safely when
the feature is merged or abandoned.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; wire the logger and printer into
		// the context commands will use.
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(output.WithPrinter(log.WithLogger(cmd.Context(), logger), os.Stdout))

		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute runs the root command and maps errors to exit codes.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if s := wterr.SuggestionOf(err); s != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", s)
		}
		os.Exit(wterr.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newPrCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCleanCmd())
}
