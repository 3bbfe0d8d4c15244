package cli

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterNames keeps the names matching the glob pattern, preserving order.
// An empty pattern keeps everything. Nested names such as
// HeaderState::SectionState are matched as plain strings.
func FilterNames(names []string, pattern string) ([]string, error) {
	if pattern == "" {
		return names, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, name)
		}
	}
	return out, nil
}
