package hierarchy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to max names close to the given (unknown) name,
// best match first. It backs "did you mean" hints for domain.ErrUnknownNode.
func (h *Hierarchy) Suggest(name string, max int) []string {
	if max <= 0 || name == "" {
		return nil
	}

	type candidate struct {
		name     string
		distance int
		order    int
	}

	needle := strings.ToLower(name)
	threshold := len(needle) / 3
	if threshold < 2 {
		threshold = 2
	}

	var candidates []candidate
	for i, n := range h.Names() {
		hay := strings.ToLower(n)
		d := levenshtein.ComputeDistance(needle, hay)
		if strings.Contains(hay, needle) && d > 1 {
			d = 1
		}
		if d <= threshold {
			candidates = append(candidates, candidate{name: n, distance: d, order: i})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].order < candidates[j].order
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}
