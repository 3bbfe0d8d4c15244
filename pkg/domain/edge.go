package domain

// EdgeKind distinguishes owning placement from interface realization.
type EdgeKind string

const (
	// EdgeInherits places the child under its parent in the forest (the default).
	EdgeInherits EdgeKind = "inherits"
	// EdgeRealizes records that the child realizes the parent without being owned by it.
	EdgeRealizes EdgeKind = "realizes"
)

// Edge is one entry of the flat edge list a hierarchy is built from.
// An empty Parent declares a root.
type Edge struct {
	Child  string   `json:"child" yaml:"child" mapstructure:"child"`
	Parent string   `json:"parent,omitempty" yaml:"parent,omitempty" mapstructure:"parent"`
	Link   string   `json:"link,omitempty" yaml:"link,omitempty" mapstructure:"link"`
	Kind   EdgeKind `json:"kind,omitempty" yaml:"kind,omitempty" mapstructure:"kind"`
}

// Root declares a root node.
func Root(name string) Edge {
	return Edge{Child: name}
}

// Inherits declares child as owned by parent.
func Inherits(child, parent string) Edge {
	return Edge{Child: child, Parent: parent}
}

// Realizes declares child as realizing iface.
func Realizes(child, iface string) Edge {
	return Edge{Child: child, Parent: iface, Kind: EdgeRealizes}
}

// IsRealization reports whether the edge is a non-owning realization.
func (e Edge) IsRealization() bool {
	return e.Kind == EdgeRealizes
}
