package domain

// Basic is a plain n-ary tree node.
type Basic struct {
	Value string
	Kids  []Child
}

var _ Node = (*Basic)(nil)

// Leaf creates a node with no children.
func Leaf(label string) *Basic {
	return &Basic{Value: label}
}

// Branch creates a node with the given child slots.
func Branch(label string, kids ...Child) *Basic {
	return &Basic{Value: label, Kids: kids}
}

// Label implements Node.
func (b *Basic) Label() string {
	return b.Value
}

// Children implements Node.
func (b *Basic) Children() []Child {
	return b.Kids
}
