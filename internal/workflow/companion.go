package workflow

import (
	"context"
	"os/exec"

	"github.com/birkelund/wt/internal/cmd"
	"github.com/birkelund/wt/internal/log"
)

// LaunchCompanion starts the configured companion tool inside the
// worktree with inherited terminal streams. A missing tool is a
// warning, never a failure: the worktree was already created.
func (s *Session) LaunchCompanion(ctx context.Context, dir string) {
	l := log.FromContext(ctx)
	tool := s.Config.DefaultCompanionTool
	if tool == "" {
		return
	}
	if _, err := exec.LookPath(tool); err != nil {
		l.Warnf("companion tool %q not found, skipping", tool)
		return
	}
	if err := cmd.RunInteractive(ctx, dir, tool); err != nil {
		l.Warnf("companion tool exited with error: %v", err)
	}
}
