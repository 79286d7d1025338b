// Package format holds feature-name normalization and small display
// formatting helpers shared by the commands.
package format

import (
	"regexp"
	"strings"

	"github.com/birkelund/wt/internal/wterr"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	featNameRe   = regexp.MustCompile(`^[a-z0-9._-]+$`)
)

// NormalizeFeatureName lowercases the name, collapses whitespace runs
// into dashes, and validates the result against [a-z0-9._-]+.
func NormalizeFeatureName(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = whitespaceRe.ReplaceAllString(normalized, "-")
	if !featNameRe.MatchString(normalized) {
		return "", wterr.InvalidFeatureName(normalized)
	}
	return normalized, nil
}

// DeriveFeatureName derives a feature name from a branch, stripping the
// configured prefix when present.
func DeriveFeatureName(branch, prefix string) string {
	if prefix != "" && strings.HasPrefix(branch, prefix) {
		return branch[len(prefix):]
	}
	return branch
}
