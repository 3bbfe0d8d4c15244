package dsl

import (
	"fmt"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
)

// Builder manages the hierarchy declaration.
type Builder struct {
	nodes map[string]*NodeBuilder
	order []string
}

// New creates a new hierarchy builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add declares a node in the hierarchy.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(name string) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		return nb
	}
	nb := &NodeBuilder{
		name:    name,
		builder: b,
	}
	b.nodes[name] = nb
	b.order = append(b.order, name)
	return nb
}

// Edges returns the declared edge list in declaration order:
// one owning edge per node, followed by every realization.
func (b *Builder) Edges() []domain.Edge {
	edges := make([]domain.Edge, 0, len(b.order))
	var realizations []domain.Edge
	for _, name := range b.order {
		nb := b.nodes[name]
		edges = append(edges, domain.Edge{Child: name, Parent: nb.parent, Link: nb.link})
		for _, iface := range nb.realizes {
			realizations = append(realizations, domain.Realizes(name, iface))
		}
	}
	return append(edges, realizations...)
}

// Build compiles the declaration into a Hierarchy.
func (b *Builder) Build(opts ...hierarchy.Option) (*hierarchy.Hierarchy, error) {
	h, err := hierarchy.Build(b.Edges(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build hierarchy: %w", err)
	}
	return h, nil
}
