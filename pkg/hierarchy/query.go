package hierarchy

import (
	"iter"

	"github.com/aretw0/lineage/pkg/domain"
)

// AncestorsOf returns the owning ancestors of name, nearest first.
// Realizations are not followed.
func (h *Hierarchy) AncestorsOf(name string) ([]string, error) {
	n, err := h.lookup(name)
	if err != nil {
		return nil, err
	}

	out := []string{}
	seen := map[domain.NodeID]bool{n.ID: true}
	for p := n.Parent; p != domain.NoParent; p = h.store.Node(p).Parent {
		if seen[p] {
			return nil, domain.NewNameError(domain.ErrCyclicReference, name, append(out, h.store.Name(p))...)
		}
		seen[p] = true
		out = append(out, h.store.Name(p))
	}
	return out, nil
}

// DepthOf returns the distance from name to its root. Roots have depth 0.
func (h *Hierarchy) DepthOf(name string) (int, error) {
	ancestors, err := h.AncestorsOf(name)
	if err != nil {
		return 0, err
	}
	return len(ancestors), nil
}

// DescendantsOf returns a lazy pre-order traversal of the subtree rooted at name,
// starting with name itself. Each call to the returned sequence walks afresh.
//
// An unknown name yields a single domain.ErrUnknownNode. A node reached twice
// yields domain.ErrCyclicReference and ends the sequence.
func (h *Hierarchy) DescendantsOf(name string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		start, ok := h.store.Lookup(name)
		if !ok {
			yield("", domain.NewNameError(domain.ErrUnknownNode, name))
			return
		}

		visited := make(map[domain.NodeID]bool)
		stack := []domain.NodeID{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if visited[id] {
				yield("", domain.NewNameError(domain.ErrCyclicReference, h.store.Name(id), name))
				return
			}
			visited[id] = true

			if !yield(h.store.Name(id), nil) {
				return
			}

			children := h.store.Node(id).Children
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// Descendants collects DescendantsOf into a slice.
func (h *Hierarchy) Descendants(name string) ([]string, error) {
	var out []string
	for n, err := range h.DescendantsOf(name) {
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Leaves returns every node without children, once each, in insertion order.
func (h *Hierarchy) Leaves() []string {
	out := []string{}
	for _, id := range h.store.All() {
		if h.store.Node(id).IsLeaf() {
			out = append(out, h.store.Name(id))
		}
	}
	return out
}

// Realizes returns the interfaces name realizes through non-owning edges.
func (h *Hierarchy) Realizes(name string) ([]string, error) {
	n, err := h.lookup(name)
	if err != nil {
		return nil, err
	}
	return h.names(n.Realizes), nil
}

// RealizedBy returns every node that realizes iface, in insertion order.
func (h *Hierarchy) RealizedBy(iface string) ([]string, error) {
	target, ok := h.store.Lookup(iface)
	if !ok {
		return nil, domain.NewNameError(domain.ErrUnknownNode, iface)
	}

	out := []string{}
	for _, id := range h.store.All() {
		for _, r := range h.store.Node(id).Realizes {
			if r == target {
				out = append(out, h.store.Name(id))
				break
			}
		}
	}
	return out, nil
}

// Walk visits every node in pre-order, root by root.
// Returning an error from fn stops the walk and returns that error.
func (h *Hierarchy) Walk(fn func(Entry) error) error {
	for _, root := range h.roots {
		if err := h.walk(root, 0, make(map[domain.NodeID]bool), fn); err != nil {
			return err
		}
	}
	return nil
}

// WalkFrom visits the subtree rooted at name in pre-order. Depth is relative to the hierarchy root.
func (h *Hierarchy) WalkFrom(name string, fn func(Entry) error) error {
	depth, err := h.DepthOf(name)
	if err != nil {
		return err
	}
	id, _ := h.store.Lookup(name)
	return h.walk(id, depth, make(map[domain.NodeID]bool), fn)
}

func (h *Hierarchy) walk(id domain.NodeID, depth int, visited map[domain.NodeID]bool, fn func(Entry) error) error {
	if visited[id] {
		return domain.NewNameError(domain.ErrCyclicReference, h.store.Name(id))
	}
	visited[id] = true

	if err := fn(h.entry(id, depth)); err != nil {
		return err
	}
	for _, child := range h.store.Node(id).Children {
		if err := h.walk(child, depth+1, visited, fn); err != nil {
			return err
		}
	}
	return nil
}
