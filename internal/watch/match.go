// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns select compiled classes and packaged jars.
var DefaultPatterns = []string{"**/*.class", "**/*.jar"}

// defaultIgnores are excluded regardless of user ignore patterns. Build tools
// write these while compiling and they never affect a benchmark run.
var defaultIgnores = []string{
	"**/tmp/**",
	"**/*.tmp",
	"**/*.lock",
	"**/*~",
	"**/.DS_Store",
}

// matcher decides whether a root-relative path is interesting.
type matcher struct {
	patterns []string
	ignores  []string
}

func newMatcher(patterns, ignore []string) (*matcher, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	if err := validatePatterns(patterns, "watch"); err != nil {
		return nil, err
	}
	if err := validatePatterns(ignore, "ignore"); err != nil {
		return nil, err
	}

	ignores := make([]string, 0, len(defaultIgnores)+len(ignore))
	ignores = append(ignores, defaultIgnores...)
	ignores = append(ignores, ignore...)
	return &matcher{patterns: patterns, ignores: ignores}, nil
}

func (m *matcher) ignored(rel string) bool {
	return matchAny(m.ignores, rel)
}

// accepts reports whether rel matches a watch pattern and no ignore pattern.
func (m *matcher) accepts(rel string) bool {
	return !m.ignored(rel) && matchAny(m.patterns, rel)
}

func matchAny(patterns []string, rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, normalized); err == nil && ok {
			return true
		}
	}
	return false
}

func validatePatterns(patterns []string, label string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("%w: %s pattern %q", ErrInvalidPattern, label, pat)
		}
	}
	return nil
}
