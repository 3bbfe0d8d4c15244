package manifest

import (
	"fmt"
	"io"

	"github.com/aretw0/lineage/pkg/hierarchy"
	"gopkg.in/yaml.v3"
)

// FromHierarchy builds a nested manifest that rebuilds h.
func FromHierarchy(h *hierarchy.Hierarchy) (*Manifest, error) {
	var build func(name string) (NodeSpec, error)
	build = func(name string) (NodeSpec, error) {
		n, _ := h.Node(name)
		realizes, err := h.Realizes(name)
		if err != nil {
			return NodeSpec{}, err
		}
		spec := NodeSpec{Name: name, Link: n.Link}
		if len(realizes) > 0 {
			spec.Realizes = realizes
		}
		children, err := h.ChildrenOf(name)
		if err != nil {
			return NodeSpec{}, err
		}
		for _, child := range children {
			c, err := build(child)
			if err != nil {
				return NodeSpec{}, err
			}
			spec.Children = append(spec.Children, c)
		}
		return spec, nil
	}

	m := &Manifest{}
	for _, root := range h.Roots() {
		spec, err := build(root)
		if err != nil {
			return nil, err
		}
		m.Nodes = append(m.Nodes, spec)
	}
	return m, nil
}

// Encode writes h as a YAML manifest.
func Encode(w io.Writer, h *hierarchy.Hierarchy) error {
	m, err := FromHierarchy(h)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return enc.Close()
}
