package domain

import "reflect"

// Node is the contract a tree element must satisfy to be serialized.
//
// Label is used verbatim in the generated markup; no escaping is applied.
// Children must be finite and deterministic: the serializer calls it at most
// once per node and recurses into every slot in order.
type Node interface {
	Label() string
	Children() []Child
}

// Child is one ordered slot of a node's children.
// The zero value is the absent marker.
type Child struct {
	node Node
}

// Of wraps n into a child slot. A nil node yields the absent marker, including
// a typed nil such as (*Basic)(nil).
func Of(n Node) Child {
	if isNil(n) {
		return Child{}
	}
	return Child{node: n}
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := reflect.ValueOf(n); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Absent returns the marker for a missing subtree.
func Absent() Child {
	return Child{}
}

// IsAbsent reports whether the slot holds no node.
func (c Child) IsAbsent() bool {
	return c.node == nil
}

// Node returns the wrapped node, or nil for an absent slot.
func (c Child) Node() Node {
	return c.node
}

// Nodes wraps every node into a child slot, preserving order.
func Nodes(nodes ...Node) []Child {
	out := make([]Child, len(nodes))
	for i, n := range nodes {
		out[i] = Of(n)
	}
	return out
}
