// Package gh shells out to the GitHub CLI for pull request creation.
package gh

import (
	"context"
	"os/exec"
	"strings"

	"github.com/birkelund/wt/internal/cmd"
	"github.com/birkelund/wt/internal/wterr"
)

// CheckInstalled verifies that the gh binary is on PATH.
func CheckInstalled() error {
	if _, err := exec.LookPath("gh"); err != nil {
		return wterr.MissingDependency("gh", "Install it from https://cli.github.com/")
	}
	return nil
}

// PROptions controls pr create.
type PROptions struct {
	Base  string
	Head  string
	Title string
	Body  string
	Draft bool
	Fill  bool
}

// CreatePR opens a pull request from dir and returns its URL.
func CreatePR(ctx context.Context, dir string, opts PROptions) (string, error) {
	args := []string{"pr", "create", "--base", opts.Base, "--head", opts.Head}
	switch {
	case opts.Fill:
		args = append(args, "--fill")
	case opts.Title != "":
		args = append(args, "--title", opts.Title)
		if opts.Body != "" {
			args = append(args, "--body", opts.Body)
		} else {
			args = append(args, "--body", "")
		}
	default:
		args = append(args, "--fill")
	}
	if opts.Draft {
		args = append(args, "--draft")
	}

	out, err := cmd.OutputContext(ctx, dir, "gh", args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ViewPRURL returns the URL of the existing pull request for branch, or
// an empty string when none exists.
func ViewPRURL(ctx context.Context, dir, branch string) string {
	out, err := cmd.OutputContext(ctx, dir, "gh", "pr", "view", branch, "--json", "url", "--jq", ".url")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
