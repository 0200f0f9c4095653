package latex

import (
	"strings"

	"github.com/aretw0/latextree/pkg/domain"
)

// RenderNode returns the qtree expression for a single child slot and its subtree.
//
// Recursion depth equals tree depth. Cyclic structures are not detected.
func RenderNode(c domain.Child) string {
	var sb strings.Builder
	writeNode(&sb, c)
	return sb.String()
}

// RenderTree returns one complete diagram block for root.
// An absent root yields a block holding only the placeholder.
func RenderTree(root domain.Child) string {
	var sb strings.Builder
	sb.WriteString(TreeHeader)
	writeNode(&sb, root)
	sb.WriteString(TreeFooter)
	return sb.String()
}

func writeNode(sb *strings.Builder, c domain.Child) {
	if c.IsAbsent() {
		sb.WriteString(NullSymbol)
		return
	}

	n := c.Node()
	sb.WriteString("[ .")
	sb.WriteString(n.Label())
	sb.WriteString(" ")
	for i, child := range n.Children() {
		if i > 0 {
			sb.WriteString(" ")
		}
		writeNode(sb, child)
	}
	sb.WriteString(" ]")
}

// Stats describes the shape of a rendered tree.
type Stats struct {
	Nodes        int // concrete nodes
	Placeholders int // absent slots
	Depth        int // 0 for an absent root
}

// Measure walks the tree the same way RenderNode does and reports its shape.
func Measure(c domain.Child) Stats {
	var s Stats
	measure(c, 1, &s)
	return s
}

func measure(c domain.Child, depth int, s *Stats) {
	if c.IsAbsent() {
		s.Placeholders++
		return
	}
	s.Nodes++
	if depth > s.Depth {
		s.Depth = depth
	}
	for _, child := range c.Node().Children() {
		measure(child, depth+1, s)
	}
}

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
	`[`, `{[}`,
	`]`, `{]}`,
)

// Escape makes a label safe to embed in a qtree expression.
// RenderNode never calls it; labels are the caller's responsibility.
func Escape(label string) string {
	return escaper.Replace(label)
}
