package hierarchy

import (
	"slices"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/store"
)

// Hierarchy is a built, immutable forest of named nodes.
type Hierarchy struct {
	store       *store.Store
	roots       []domain.NodeID
	fingerprint string
}

func newHierarchy(s *store.Store) *Hierarchy {
	h := &Hierarchy{
		store: s,
		roots: s.Roots(),
	}
	h.fingerprint = computeFingerprint(h.Edges())
	return h
}

// Entry is a read-only view of one node, as seen during a walk.
type Entry struct {
	Name     string
	Link     string
	Parent   string
	Depth    int
	Realizes []string
	Leaf     bool
}

// Len returns the number of nodes.
func (h *Hierarchy) Len() int {
	return h.store.Len()
}

// Roots returns the names of all root nodes in insertion order.
func (h *Hierarchy) Roots() []string {
	return h.names(h.roots)
}

// Names returns every node name in insertion order.
func (h *Hierarchy) Names() []string {
	return h.names(h.store.All())
}

// Has reports whether name is part of the hierarchy.
func (h *Hierarchy) Has(name string) bool {
	_, ok := h.store.Lookup(name)
	return ok
}

// Node returns a copy of the node named name.
func (h *Hierarchy) Node(name string) (domain.Node, bool) {
	n, ok := h.store.Get(name)
	if !ok {
		return domain.Node{}, false
	}
	cp := *n
	cp.Children = slices.Clone(n.Children)
	cp.Realizes = slices.Clone(n.Realizes)
	return cp, true
}

// Parent returns the owning parent of name, or "" for a root.
func (h *Hierarchy) Parent(name string) (string, error) {
	n, err := h.lookup(name)
	if err != nil {
		return "", err
	}
	if n.IsRoot() {
		return "", nil
	}
	return h.store.Name(n.Parent), nil
}

// ChildrenOf returns the direct children of name in insertion order.
func (h *Hierarchy) ChildrenOf(name string) ([]string, error) {
	n, err := h.lookup(name)
	if err != nil {
		return nil, err
	}
	return h.names(n.Children), nil
}

// Edges returns a canonical edge list that rebuilds this hierarchy:
// owning edges in insertion order followed by realizations.
func (h *Hierarchy) Edges() []domain.Edge {
	all := h.store.All()
	edges := make([]domain.Edge, 0, len(all))
	for _, id := range all {
		n := h.store.Node(id)
		e := domain.Edge{Child: n.Name, Link: n.Link}
		if !n.IsRoot() {
			e.Parent = h.store.Name(n.Parent)
		}
		edges = append(edges, e)
	}
	for _, id := range all {
		n := h.store.Node(id)
		for _, iface := range n.Realizes {
			edges = append(edges, domain.Realizes(n.Name, h.store.Name(iface)))
		}
	}
	return edges
}

// Fingerprint returns a stable content digest of the hierarchy.
// Two hierarchies with the same nodes, links, order and edges share a fingerprint.
func (h *Hierarchy) Fingerprint() string {
	return h.fingerprint
}

func (h *Hierarchy) lookup(name string) (*domain.Node, error) {
	n, ok := h.store.Get(name)
	if !ok {
		return nil, domain.NewNameError(domain.ErrUnknownNode, name)
	}
	return n, nil
}

func (h *Hierarchy) names(ids []domain.NodeID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, h.store.Name(id))
	}
	return out
}

func (h *Hierarchy) entry(id domain.NodeID, depth int) Entry {
	n := h.store.Node(id)
	e := Entry{
		Name:     n.Name,
		Link:     n.Link,
		Depth:    depth,
		Realizes: h.names(n.Realizes),
		Leaf:     n.IsLeaf(),
	}
	if !n.IsRoot() {
		e.Parent = h.store.Name(n.Parent)
	}
	return e
}
