package dsl

import "github.com/aretw0/latextree/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node and its children.
type NodeBuilder struct {
	node   *domain.Basic
	parent *NodeBuilder
}

// New creates a builder for a root node.
func New(label string) *NodeBuilder {
	return &NodeBuilder{node: domain.Leaf(label)}
}

// Leaf appends a childless node and returns the same builder.
func (n *NodeBuilder) Leaf(label string) *NodeBuilder {
	n.node.Kids = append(n.node.Kids, domain.Of(domain.Leaf(label)))
	return n
}

// Absent appends a missing-subtree slot and returns the same builder.
func (n *NodeBuilder) Absent() *NodeBuilder {
	n.node.Kids = append(n.node.Kids, domain.Absent())
	return n
}

// Attach appends an existing node. A nil node is appended as an absent slot.
func (n *NodeBuilder) Attach(node domain.Node) *NodeBuilder {
	n.node.Kids = append(n.node.Kids, domain.Of(node))
	return n
}

// Child appends a new node and returns its builder, so its own children can be added.
func (n *NodeBuilder) Child(label string) *NodeBuilder {
	child := &NodeBuilder{node: domain.Leaf(label), parent: n}
	n.node.Kids = append(n.node.Kids, domain.Of(child.node))
	return child
}

// Up returns the parent builder. On the root it returns the root itself.
func (n *NodeBuilder) Up() *NodeBuilder {
	if n.parent == nil {
		return n
	}
	return n.parent
}

// Build returns the root of the tree being built, whichever builder it is called on.
func (n *NodeBuilder) Build() *domain.Basic {
	for n.parent != nil {
		n = n.parent
	}
	return n.node
}
