// Package state manages the registry of wt-managed worktrees at
// .wt/state.json. The registry is an advisory side-index: every command
// invocation is a complete load→mutate→save cycle, and out-of-band
// changes to the repository are reconciled by Prune.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Record is the metadata for one wt-managed worktree.
type Record struct {
	FeatureName string `json:"featureName"` // normalized identifier, unique
	Branch      string `json:"branch"`      // fully-qualified branch name
	Path        string `json:"path"`        // absolute worktree path, unique
	Base        string `json:"base"`        // branch this worktree was forked from
	CreatedAt   string `json:"createdAt"`   // RFC 3339
}

// State holds all registry records, in insertion order.
type State struct {
	Worktrees []Record `json:"worktrees"`
}

// Path returns the state file path for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, ".wt", "state.json")
}

// Load reads the registry from path. A missing file yields an empty
// registry; malformed JSON is a surfaced error, since silently
// discarding tracked worktrees is worse than a visible failure.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse state %s: %w", path, err)
	}
	return &st, nil
}

// Save writes the registry to path atomically, creating parent
// directories as needed. Always a full rewrite.
func (s *State) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	if s.Worktrees == nil {
		s.Worktrees = []Record{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Add appends a record. Feature name and path must be unique within the
// registry.
func (s *State) Add(featureName, branch, path, base string) (*Record, error) {
	if s.FindByFeatureName(featureName) != nil {
		return nil, fmt.Errorf("worktree already tracked for feature %q", featureName)
	}
	if s.FindByPath(path) != nil {
		return nil, fmt.Errorf("worktree already tracked at %s", path)
	}

	s.Worktrees = append(s.Worktrees, Record{
		FeatureName: featureName,
		Branch:      branch,
		Path:        path,
		Base:        base,
		CreatedAt:   time.Now().Format(time.RFC3339),
	})
	return &s.Worktrees[len(s.Worktrees)-1], nil
}

// RemoveByPath removes the record with the given path, if present.
func (s *State) RemoveByPath(path string) {
	for i, rec := range s.Worktrees {
		if rec.Path == path {
			s.Worktrees = slices.Delete(s.Worktrees, i, i+1)
			return
		}
	}
}

// FindByFeatureName returns the record for a feature name, or nil.
func (s *State) FindByFeatureName(name string) *Record {
	for i := range s.Worktrees {
		if s.Worktrees[i].FeatureName == name {
			return &s.Worktrees[i]
		}
	}
	return nil
}

// FindByBranch returns the record for a branch, or nil.
func (s *State) FindByBranch(branch string) *Record {
	for i := range s.Worktrees {
		if s.Worktrees[i].Branch == branch {
			return &s.Worktrees[i]
		}
	}
	return nil
}

// FindByPath returns the record for a path, or nil. Paths are compared
// after canonicalization so symlink aliases resolve to the same record.
func (s *State) FindByPath(path string) *Record {
	want := CanonicalPath(path)
	for i := range s.Worktrees {
		if CanonicalPath(s.Worktrees[i].Path) == want {
			return &s.Worktrees[i]
		}
	}
	return nil
}

// FeatureNames returns the feature names of all records, in order.
func (s *State) FeatureNames() []string {
	names := make([]string, len(s.Worktrees))
	for i, rec := range s.Worktrees {
		names[i] = rec.FeatureName
	}
	return names
}

// CreatedTime parses the record's creation timestamp.
// Returns the zero time if it cannot be parsed.
func (r *Record) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
