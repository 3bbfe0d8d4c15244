package memory

import (
	"context"
	"slices"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
)

// Loader implements ports.EdgeLoader over a fixed edge list.
type Loader struct {
	edges []domain.Edge
}

// NewLoader creates a Loader serving a copy of edges.
func NewLoader(edges ...domain.Edge) *Loader {
	return &Loader{edges: slices.Clone(edges)}
}

// NewFromHierarchy creates a Loader serving the canonical edges of h.
func NewFromHierarchy(h *hierarchy.Hierarchy) *Loader {
	return &Loader{edges: h.Edges()}
}

// LoadEdges returns a copy of the edge list.
func (l *Loader) LoadEdges(ctx context.Context) ([]domain.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(l.edges), nil
}
