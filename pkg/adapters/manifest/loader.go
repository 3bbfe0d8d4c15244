package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/lineage/pkg/domain"
)

// Loader implements ports.EdgeLoader over a manifest file.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the manifest at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadEdges reads the manifest and flattens it.
func (l *Loader) LoadEdges(ctx context.Context) ([]domain.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Decode(data, FormatFor(l.path))
	if err != nil {
		return nil, err
	}
	return m.Edges()
}
