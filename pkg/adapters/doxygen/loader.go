package doxygen

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/lineage/pkg/domain"
)

// Loader implements ports.EdgeLoader over a hierarchy.js file.
type Loader struct {
	path string
}

// NewLoader creates a Loader reading the index at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadEdges reads and parses the index file.
func (l *Loader) LoadEdges(ctx context.Context) ([]domain.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read doxygen hierarchy: %w", err)
	}
	edges, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return edges, nil
}
