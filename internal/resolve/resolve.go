// Package resolve picks exactly one registry record from an explicit
// identifier, the ambient working location, or an interactive prompt.
// Ambient facts are precomputed by the caller so resolution itself
// never shells out.
package resolve

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/birkelund/wt/internal/state"
	"github.com/birkelund/wt/internal/wterr"
)

// Chooser presents options to the user and returns the selected index.
// A negative index means the user cancelled.
type Chooser interface {
	Choose(title string, options []string) (int, error)
}

// Ambient describes where the command is running.
type Ambient struct {
	WorktreeRoot  string // toplevel of the checkout the command runs in
	CurrentBranch string
}

// Request carries everything needed to resolve a target record.
type Request struct {
	Explicit    string // feature name or branch, empty for ambient/interactive
	Ambient     *Ambient
	Interactive bool
	Chooser     Chooser
	Action      string // verb shown in the prompt title, e.g. "delete"
}

// Target resolves req against the registry. Lookup order: explicit
// identifier by feature name then branch, then the ambient worktree by
// path then branch, then an interactive choice.
func Target(st *state.State, req Request) (*state.Record, error) {
	if req.Explicit != "" {
		if rec := st.FindByFeatureName(req.Explicit); rec != nil {
			return rec, nil
		}
		if rec := st.FindByBranch(req.Explicit); rec != nil {
			return rec, nil
		}
		return nil, wterr.WorktreeNotFound(req.Explicit, closestFeatureName(st, req.Explicit))
	}

	if req.Ambient != nil && req.Ambient.WorktreeRoot != "" {
		if rec := st.FindByPath(req.Ambient.WorktreeRoot); rec != nil {
			return rec, nil
		}
		if req.Ambient.CurrentBranch != "" {
			if rec := st.FindByBranch(req.Ambient.CurrentBranch); rec != nil {
				return rec, nil
			}
		}
		// Inside some checkout, but not one the registry knows about.
		return nil, wterr.NotInWorktree()
	}

	if len(st.Worktrees) == 0 {
		return nil, wterr.NoWorktrees()
	}
	if !req.Interactive || req.Chooser == nil {
		return nil, wterr.Usage(
			"no worktree specified and not running in a terminal; cannot prompt",
			fmt.Sprintf("Pass a feature name: wt %s <name>", req.Action))
	}

	options := make([]string, len(st.Worktrees))
	for i, rec := range st.Worktrees {
		options[i] = fmt.Sprintf("%s (%s)", rec.FeatureName, rec.Branch)
	}
	title := "Select worktree"
	if req.Action != "" {
		title = fmt.Sprintf("Select worktree to %s", req.Action)
	}
	idx, err := req.Chooser.Choose(title, options)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(st.Worktrees) {
		return nil, wterr.Usage("invalid selection", "")
	}
	return &st.Worktrees[idx], nil
}

// closestFeatureName returns the best fuzzy match for name among the
// registered feature names, or empty when nothing matches.
func closestFeatureName(st *state.State, name string) string {
	names := st.FeatureNames()
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
