package git

import (
	"os/exec"

	"github.com/birkelund/wt/internal/wterr"
)

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return wterr.MissingDependency("git", "Install it from https://git-scm.com/")
	}
	return nil
}
