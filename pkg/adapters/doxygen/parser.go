package doxygen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/lineage/pkg/domain"
)

// ErrMalformed is returned when the input is not a Doxygen hierarchy index.
var ErrMalformed = errors.New("malformed doxygen hierarchy")

type entry struct {
	Name     string
	Link     string
	Children []entry
}

func (e *entry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: entry is not an array: %v", ErrMalformed, err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: entry has %d elements, want 3", ErrMalformed, len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.Name); err != nil {
		return fmt.Errorf("%w: entry name: %v", ErrMalformed, err)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: entry with empty name", ErrMalformed)
	}
	// null decodes to the zero value for both the link and the children.
	var link *string
	if err := json.Unmarshal(raw[1], &link); err != nil {
		return fmt.Errorf("%w: link of %q: %v", ErrMalformed, e.Name, err)
	}
	if link != nil {
		e.Link = *link
	}
	if err := json.Unmarshal(raw[2], &e.Children); err != nil {
		return fmt.Errorf("%w: children of %q: %v", ErrMalformed, e.Name, err)
	}
	return nil
}

// Parse converts a hierarchy index into a flat edge list in document order.
func Parse(data []byte) ([]domain.Edge, error) {
	start := bytes.IndexByte(data, '[')
	end := bytes.LastIndexByte(data, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no array found", ErrMalformed)
	}

	var entries []entry
	if err := json.Unmarshal(data[start:end+1], &entries); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return nil, err
	}

	f := flattener{
		owner:    make(map[string]string),
		realized: make(map[[2]string]bool),
	}
	f.walk(entries, "")
	return f.edges, nil
}

type flattener struct {
	edges    []domain.Edge
	owner    map[string]string
	realized map[[2]string]bool
}

func (f *flattener) walk(entries []entry, parent string) {
	for _, e := range entries {
		f.visit(e, parent)
		f.walk(e.Children, e.Name)
	}
}

func (f *flattener) visit(e entry, parent string) {
	owner, seen := f.owner[e.Name]
	if !seen {
		f.owner[e.Name] = parent
		f.edges = append(f.edges, domain.Edge{Child: e.Name, Parent: parent, Link: e.Link})
		return
	}
	// Repeated root entries and repeated placements under the owner add nothing.
	if parent == "" || parent == owner {
		return
	}
	key := [2]string{e.Name, parent}
	if f.realized[key] {
		return
	}
	f.realized[key] = true
	f.edges = append(f.edges, domain.Realizes(e.Name, parent))
}
