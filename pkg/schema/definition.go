package schema

import "github.com/aretw0/latextree/pkg/domain"

// Definition is a decoded tree node.
// A nil entry in Kids is an absent slot.
type Definition struct {
	Value string        `json:"label" yaml:"label" mapstructure:"label"`
	Kids  []*Definition `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

var _ domain.Node = (*Definition)(nil)

// Label implements domain.Node.
func (d *Definition) Label() string {
	return d.Value
}

// Children implements domain.Node.
func (d *Definition) Children() []domain.Child {
	if len(d.Kids) == 0 {
		return nil
	}
	out := make([]domain.Child, len(d.Kids))
	for i, k := range d.Kids {
		if k != nil {
			out[i] = domain.Of(k)
		}
	}
	return out
}

// Root wraps d as a child slot, mapping a nil definition to the absent marker.
func (d *Definition) Root() domain.Child {
	if d == nil {
		return domain.Absent()
	}
	return domain.Of(d)
}
