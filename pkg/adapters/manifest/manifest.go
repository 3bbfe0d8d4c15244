// Package manifest loads hierarchies from hand-written YAML or JSON manifests.
//
// A manifest nests classes under their owning parent and may add flat edges:
//
//	nodes:
//	  - name: LoggingBaseClass
//	    children:
//	      - name: Dialog
//	        link: classDialog.html
//	        realizes: [QDialog]
//	  - name: QDialog
//	edges:
//	  - child: ToastManager
//	    parent: QObject
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/lineage/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for flat edges with a kind other than inherits or realizes.
var ErrUnknownKind = errors.New("unknown edge kind")

// Manifest is the top level document.
type Manifest struct {
	Nodes []NodeSpec    `yaml:"nodes,omitempty" json:"nodes,omitempty"`
	Flat  []domain.Edge `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// NodeSpec declares one class and, recursively, the classes it owns.
type NodeSpec struct {
	Name     string     `yaml:"name" json:"name"`
	Link     string     `yaml:"link,omitempty" json:"link,omitempty"`
	Realizes []string   `yaml:"realizes,omitempty" json:"realizes,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty" json:"children,omitempty"`
}

// Decode parses a manifest. JSON is used when format is "json", YAML otherwise.
func Decode(data []byte, format string) (*Manifest, error) {
	var m Manifest
	if strings.EqualFold(format, "json") {
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest json: %w", err)
		}
		return &m, nil
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest yaml: %w", err)
	}
	return &m, nil
}

// FormatFor picks the manifest format from a file extension.
func FormatFor(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return "json"
	}
	return "yaml"
}

// Edges flattens the manifest: nested owning edges in pre-order, then the
// realizations declared on nested nodes, then the flat edges as written.
func (m *Manifest) Edges() ([]domain.Edge, error) {
	var owning, realizations []domain.Edge

	var walk func(specs []NodeSpec, parent string)
	walk = func(specs []NodeSpec, parent string) {
		for _, spec := range specs {
			owning = append(owning, domain.Edge{Child: spec.Name, Parent: parent, Link: spec.Link})
			for _, iface := range spec.Realizes {
				realizations = append(realizations, domain.Realizes(spec.Name, iface))
			}
			walk(spec.Children, spec.Name)
		}
	}
	walk(m.Nodes, "")

	for _, e := range m.Flat {
		switch e.Kind {
		case "", domain.EdgeInherits, domain.EdgeRealizes:
		default:
			return nil, fmt.Errorf("%w %q on edge %s -> %s", ErrUnknownKind, e.Kind, e.Child, e.Parent)
		}
	}

	edges := make([]domain.Edge, 0, len(owning)+len(realizations)+len(m.Flat))
	edges = append(edges, owning...)
	edges = append(edges, realizations...)
	return append(edges, m.Flat...), nil
}
