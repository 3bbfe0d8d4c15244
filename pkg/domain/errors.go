package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateName is returned when a name is inserted twice.
var ErrDuplicateName = errors.New("duplicate name")

// ErrUnknownParent is returned when an edge references a parent that was never declared.
var ErrUnknownParent = errors.New("unknown parent")

// ErrUnknownNode is returned when a query references a name that is not in the hierarchy.
var ErrUnknownNode = errors.New("unknown node")

// ErrCyclicReference is returned when an ancestor chain revisits itself.
var ErrCyclicReference = errors.New("cyclic reference")

// ErrInvalidName is returned for empty node names.
var ErrInvalidName = errors.New("invalid name")

// ErrFrozen is returned when mutating a store that belongs to a built hierarchy.
var ErrFrozen = errors.New("hierarchy is frozen")

// ErrSnapshotNotFound is returned when a snapshot name cannot be found in the store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// NameError classifies a failure and carries the offending name(s).
type NameError struct {
	Err     error    // One of the sentinel errors above
	Name    string   // The offending name
	Related []string // Other names involved (parent, cycle members)
}

func (e *NameError) Error() string {
	if len(e.Related) == 0 {
		return fmt.Sprintf("%s: %q", e.Err, e.Name)
	}
	return fmt.Sprintf("%s: %q (%s)", e.Err, e.Name, strings.Join(e.Related, " -> "))
}

func (e *NameError) Unwrap() error {
	return e.Err
}

// NewNameError builds a NameError for the given sentinel.
func NewNameError(kind error, name string, related ...string) *NameError {
	return &NameError{Err: kind, Name: name, Related: related}
}

// OffendingName extracts the offending name from err, if it carries one.
func OffendingName(err error) (string, bool) {
	var ne *NameError
	if errors.As(err, &ne) {
		return ne.Name, true
	}
	return "", false
}

// ErrCorruptSnapshot is returned when a stored snapshot cannot be decoded or fails its fingerprint check.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")
