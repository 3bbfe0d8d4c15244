package ports

import (
	"context"

	"github.com/aretw0/lineage/pkg/domain"
)

// EdgeLoader defines how the engine retrieves the edge list of a hierarchy.
// This allows the source format (Doxygen, YAML, Loam, Memory) to be decoupled.
type EdgeLoader interface {
	// LoadEdges returns the edges in source order.
	LoadEdges(ctx context.Context) ([]domain.Edge, error)
}
