// Package cmd provides helpers for executing external commands with
// captured stderr, context cancellation, and verbose logging.
package cmd

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/birkelund/wt/internal/log"
	"github.com/birkelund/wt/internal/wterr"
)

// cmdline renders a command for error messages and verbose output.
func cmdline(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

// RunContext executes a command in dir (empty = inherited cwd) and
// discards stdout. A non-zero exit is wrapped as a CommandFailed error
// carrying the command line and captured stderr.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return wterr.CommandFailed(cmdline(name, args), stderr.String())
	}
	return nil
}

// OutputContext executes a command in dir and returns its stdout.
// A non-zero exit is wrapped as a CommandFailed error.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return nil, wterr.CommandFailed(cmdline(name, args), stderr.String())
	}
	return stdout.Bytes(), nil
}

// RunInteractive executes a command in dir with inherited standard
// streams. Used for subprocesses the user interacts with directly
// (init hooks, companion tools).
func RunInteractive(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
