// Package store owns the node records of a hierarchy and guarantees name uniqueness.
//
// A Store is written by a single goroutine while a hierarchy is being built and
// frozen afterwards. A frozen store is never mutated again, so it can be read
// from multiple goroutines without locking.
package store

import (
	"github.com/aretw0/lineage/pkg/domain"
)

// Store holds every Node record, indexed by name.
type Store struct {
	nodes  []domain.Node
	byName map[string]domain.NodeID
	roots  []domain.NodeID
	frozen bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		byName: make(map[string]domain.NodeID),
	}
}

// Insert creates a node named name under parent. An empty parent declares a root.
func (s *Store) Insert(name, parent, link string) (domain.NodeID, error) {
	if s.frozen {
		return domain.NoParent, domain.NewNameError(domain.ErrFrozen, name)
	}
	if name == "" {
		return domain.NoParent, domain.NewNameError(domain.ErrInvalidName, name)
	}
	if _, exists := s.byName[name]; exists {
		return domain.NoParent, domain.NewNameError(domain.ErrDuplicateName, name)
	}

	parentID := domain.NoParent
	if parent != "" {
		id, ok := s.byName[parent]
		if !ok {
			return domain.NoParent, domain.NewNameError(domain.ErrUnknownParent, name, parent)
		}
		parentID = id
	}

	id := domain.NodeID(len(s.nodes))
	s.nodes = append(s.nodes, domain.Node{
		ID:     id,
		Name:   name,
		Link:   link,
		Parent: parentID,
	})
	s.byName[name] = id

	if parentID == domain.NoParent {
		s.roots = append(s.roots, id)
	} else {
		p := &s.nodes[parentID]
		p.Children = append(p.Children, id)
	}
	return id, nil
}

// Realize records that name realizes iface. Recording the same pair twice is a no-op.
func (s *Store) Realize(name, iface string) error {
	if s.frozen {
		return domain.NewNameError(domain.ErrFrozen, name)
	}
	id, ok := s.byName[name]
	if !ok {
		return domain.NewNameError(domain.ErrUnknownNode, name)
	}
	ifaceID, ok := s.byName[iface]
	if !ok {
		return domain.NewNameError(domain.ErrUnknownParent, name, iface)
	}
	if id == ifaceID {
		return domain.NewNameError(domain.ErrCyclicReference, name, name, iface)
	}

	n := &s.nodes[id]
	for _, existing := range n.Realizes {
		if existing == ifaceID {
			return nil
		}
	}
	n.Realizes = append(n.Realizes, ifaceID)
	return nil
}

// Get returns the node named name.
func (s *Store) Get(name string) (*domain.Node, bool) {
	id, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.nodes[id], true
}

// Lookup resolves a name to its handle.
func (s *Store) Lookup(name string) (domain.NodeID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// Node returns the node for a handle issued by this store.
// It panics on a foreign or out-of-range handle.
func (s *Store) Node(id domain.NodeID) *domain.Node {
	return &s.nodes[id]
}

// Name resolves a handle to its name.
func (s *Store) Name(id domain.NodeID) string {
	return s.nodes[id].Name
}

// Roots returns all nodes without a parent, in insertion order.
func (s *Store) Roots() []domain.NodeID {
	out := make([]domain.NodeID, len(s.roots))
	copy(out, s.roots)
	return out
}

// All returns every handle in insertion order.
func (s *Store) All() []domain.NodeID {
	out := make([]domain.NodeID, len(s.nodes))
	for i := range s.nodes {
		out[i] = domain.NodeID(i)
	}
	return out
}

// Len returns the number of nodes.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Freeze makes the store read-only.
func (s *Store) Freeze() {
	s.frozen = true
}

// Frozen reports whether Freeze was called.
func (s *Store) Frozen() bool {
	return s.frozen
}
