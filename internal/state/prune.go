package state

import "path/filepath"

// CanonicalPath resolves symlinks and normalizes a path so that
// semantically identical paths compare equal (e.g. macOS /var vs
// /private/var). Paths that no longer exist fall back to a cleaned
// absolute form.
func CanonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Clean(path)
}

// Prune removes every record whose path has no corresponding live
// worktree. Both sides are canonicalized before comparison. Returns
// true if any record was removed; pruning is idempotent.
func (s *State) Prune(livePaths []string) bool {
	valid := make(map[string]bool, len(livePaths))
	for _, p := range livePaths {
		valid[CanonicalPath(p)] = true
	}

	kept := s.Worktrees[:0]
	for _, rec := range s.Worktrees {
		if valid[CanonicalPath(rec.Path)] {
			kept = append(kept, rec)
		}
	}
	changed := len(kept) != len(s.Worktrees)
	s.Worktrees = kept
	return changed
}
