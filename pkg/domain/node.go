package domain

// NodeID is a dense handle issued by the store in insertion order.
// Handles are only meaningful within the store that issued them.
type NodeID int

// NoParent marks a root node.
const NoParent NodeID = -1

// Node represents a named entity in the hierarchy.
type Node struct {
	ID   NodeID `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Link is an opaque display link (e.g. "classDialog.html"). It has no structural meaning.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Parent is the owning parent, or NoParent for roots.
	Parent NodeID `json:"parent" yaml:"parent"`

	// Children are owned, in insertion order.
	Children []NodeID `json:"children,omitempty" yaml:"children,omitempty"`

	// Realizes lists interfaces this node realizes without being owned by them.
	Realizes []NodeID `json:"realizes,omitempty" yaml:"realizes,omitempty"`
}

// IsRoot reports whether the node has no owning parent.
func (n *Node) IsRoot() bool {
	return n.Parent == NoParent
}

// IsLeaf reports whether the node owns no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
