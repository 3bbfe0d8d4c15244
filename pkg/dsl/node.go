package dsl

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	name     string
	parent   string
	link     string
	realizes []string
	builder  *Builder
}

// Under places the node beneath its owning parent.
// The parent may be declared before or after the child.
func (n *NodeBuilder) Under(parent string) *NodeBuilder {
	n.parent = parent
	return n
}

// Root clears any owning parent.
func (n *NodeBuilder) Root() *NodeBuilder {
	n.parent = ""
	return n
}

// Link sets the opaque display link of the node.
func (n *NodeBuilder) Link(link string) *NodeBuilder {
	n.link = link
	return n
}

// Realizes records interfaces the node realizes without being owned by them.
func (n *NodeBuilder) Realizes(ifaces ...string) *NodeBuilder {
	n.realizes = append(n.realizes, ifaces...)
	return n
}

// Child declares name under this node and returns its builder.
func (n *NodeBuilder) Child(name string) *NodeBuilder {
	return n.builder.Add(name).Under(n.name)
}

// Name returns the declared node name.
func (n *NodeBuilder) Name() string {
	return n.name
}
