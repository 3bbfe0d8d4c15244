package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
)

const maxSuggestions = 3

// Describe turns err into a one-line message for the terminal.
// Unknown node errors list close matches from h when h is not nil.
func Describe(err error, h *hierarchy.Hierarchy) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if h == nil || !errors.Is(err, domain.ErrUnknownNode) {
		return msg
	}

	name, ok := domain.OffendingName(err)
	if !ok {
		return msg
	}
	suggestions := h.Suggest(name, maxSuggestions)
	if len(suggestions) == 0 {
		return msg
	}
	return fmt.Sprintf("%s\n  did you mean: %s?", msg, strings.Join(suggestions, ", "))
}

// ExitCode maps err to a process exit status.
// Hierarchy build failures exit 2, unknown names 3, everything else 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrUnknownNode), errors.Is(err, domain.ErrSnapshotNotFound):
		return 3
	case errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrUnknownParent),
		errors.Is(err, domain.ErrCyclicReference),
		errors.Is(err, domain.ErrInvalidName):
		return 2
	}
	return 1
}
