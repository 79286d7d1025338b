// Package wterr defines the typed errors wt raises at decision points.
// Every error carries a Kind so the CLI edge can map it to an exit code
// and render a fixed suggestion, instead of string-matching messages.
package wterr

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for the wt binary.
const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitUsage             = 2
	ExitMissingDependency = 3
)

// Kind identifies a domain error. The set is closed: rendering code can
// switch over it exhaustively.
type Kind int

const (
	KindFailure Kind = iota
	KindUsage
	KindNotInGitRepo
	KindBranchExists
	KindBranchNotFound
	KindBaseBranchNotFound
	KindNotInWorktree
	KindNoWorktrees
	KindUncommittedChanges
	KindUnpushedCommits
	KindWorktreeNotFound
	KindInvalidFeatureName
	KindMissingDependency
	KindCommandFailed
)

// Error is the single error type for all wt domain failures.
type Error struct {
	Kind       Kind
	Message    string
	Suggestion string
}

func (e *Error) Error() string {
	return e.Message
}

// ExitCode maps an error to a process exit code. A nil error is success;
// errors that are not *Error are general failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var werr *Error
	if !errors.As(err, &werr) {
		return ExitFailure
	}
	switch werr.Kind {
	case KindUsage, KindNotInGitRepo, KindBranchExists, KindBranchNotFound,
		KindBaseBranchNotFound, KindNotInWorktree, KindNoWorktrees,
		KindUncommittedChanges, KindUnpushedCommits, KindWorktreeNotFound,
		KindInvalidFeatureName:
		return ExitUsage
	case KindMissingDependency:
		return ExitMissingDependency
	default:
		return ExitFailure
	}
}

// KindOf returns the Kind of an error, or KindFailure for foreign errors.
func KindOf(err error) Kind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return KindFailure
}

// SuggestionOf returns the suggestion attached to an error, if any.
func SuggestionOf(err error) string {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Suggestion
	}
	return ""
}

// Usage reports an invalid usage condition.
func Usage(message, suggestion string) *Error {
	return &Error{Kind: KindUsage, Message: message, Suggestion: suggestion}
}

// NotInGitRepo reports that the working directory is not inside a
// non-bare git repository.
func NotInGitRepo() *Error {
	return &Error{
		Kind:       KindNotInGitRepo,
		Message:    "not inside a non-bare git repository",
		Suggestion: "Run this command from within a non-bare git repository.",
	}
}

// BranchExists reports that the target branch already exists.
func BranchExists(branch string) *Error {
	return &Error{
		Kind:       KindBranchExists,
		Message:    fmt.Sprintf("branch %q already exists", branch),
		Suggestion: fmt.Sprintf("Use 'wt checkout %s' to open it in a worktree.", branch),
	}
}

// BranchNotFound reports that a branch exists neither locally nor on the remote.
func BranchNotFound(branch string) *Error {
	return &Error{
		Kind:       KindBranchNotFound,
		Message:    fmt.Sprintf("branch %q not found locally or on remote", branch),
		Suggestion: "Check the branch name or fetch from the remote.",
	}
}

// BaseBranchNotFound reports that the base branch could not be resolved.
func BaseBranchNotFound(base string) *Error {
	return &Error{
		Kind:       KindBaseBranchNotFound,
		Message:    fmt.Sprintf("base branch %q not found locally or on remote", base),
		Suggestion: "Use --base to specify a different base branch.",
	}
}

// NotInWorktree reports that the command must run from a managed worktree.
func NotInWorktree() *Error {
	return &Error{
		Kind:       KindNotInWorktree,
		Message:    "this command must be run from inside a wt-managed worktree",
		Suggestion: "Navigate to a worktree created with 'wt new' or 'wt checkout'.",
	}
}

// NoWorktrees reports that no worktrees are managed yet.
func NoWorktrees() *Error {
	return &Error{
		Kind:       KindNoWorktrees,
		Message:    "no wt-managed worktrees found",
		Suggestion: "Create one with 'wt new <feature>'.",
	}
}

// UncommittedChanges reports a dirty working tree blocking a destructive operation.
func UncommittedChanges() *Error {
	return &Error{
		Kind:       KindUncommittedChanges,
		Message:    "uncommitted changes detected",
		Suggestion: "Commit or stash changes, or use --force to override.",
	}
}

// UnpushedCommits reports commits missing from the upstream branch.
func UnpushedCommits() *Error {
	return &Error{
		Kind:       KindUnpushedCommits,
		Message:    "unpushed commits detected",
		Suggestion: "Push your changes, or use --force to override.",
	}
}

// WorktreeNotFound reports that no registry record matches the identifier.
// An optional candidate name turns into a "did you mean" suggestion.
func WorktreeNotFound(name, candidate string) *Error {
	suggestion := "Run 'wt list' to see managed worktrees."
	if candidate != "" {
		suggestion = fmt.Sprintf("Did you mean %q? Run 'wt list' to see managed worktrees.", candidate)
	}
	return &Error{
		Kind:       KindWorktreeNotFound,
		Message:    fmt.Sprintf("no worktree found for %q", name),
		Suggestion: suggestion,
	}
}

// InvalidFeatureName reports a feature name that fails normalization.
func InvalidFeatureName(name string) *Error {
	return &Error{
		Kind:       KindInvalidFeatureName,
		Message:    fmt.Sprintf("invalid feature name %q", name),
		Suggestion: "Use only lowercase letters, digits, '.', '_', or '-'.",
	}
}

// MissingDependency reports a required external tool that is not installed.
func MissingDependency(tool, install string) *Error {
	return &Error{
		Kind:       KindMissingDependency,
		Message:    fmt.Sprintf("%s is not installed", tool),
		Suggestion: install,
	}
}

// CommandFailed wraps a non-zero exit from an external command with the
// failing command line and its captured stderr.
func CommandFailed(cmdline, stderr string) *Error {
	message := fmt.Sprintf("command failed: %s", cmdline)
	if s := strings.TrimSpace(stderr); s != "" {
		message += "\n" + s
	}
	return &Error{
		Kind:       KindCommandFailed,
		Message:    message,
		Suggestion: "Check the command output and try again.",
	}
}
