package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/latextree/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the tree rooted at root.
// It applies semantic styling:
// - Root: ((Circle))
// - Inner node: [Rectangle]
// - Leaf: ([Stadium])
// - Absent slot: small circle holding the empty-set glyph
// Node IDs follow pre-order (n0, n1, ...) so siblings keep their left-to-right order.
func GenerateMermaid(root domain.Child) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	g := &generator{sb: &sb}
	g.visit(root, "", true)

	if g.absent > 0 {
		sb.WriteString("\n    classDef absent fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:3 3,color:#000;\n")
	}
	return sb.String()
}

type generator struct {
	sb     *strings.Builder
	next   int
	absent int
}

func (g *generator) visit(c domain.Child, parentID string, isRoot bool) {
	id := fmt.Sprintf("n%d", g.next)
	g.next++

	var kids []domain.Child
	if c.IsAbsent() {
		g.absent++
		g.sb.WriteString(fmt.Sprintf("    %s((\"∅\")):::absent\n", id))
	} else {
		n := c.Node()
		kids = n.Children()

		// Node Shape based on position
		opener, closer := "[", "]"
		switch {
		case isRoot:
			opener, closer = "((", "))"
		case len(kids) == 0:
			opener, closer = "([", "])"
		}
		g.sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, sanitizeLabel(n.Label()), closer))
	}

	if parentID != "" {
		g.sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))
	}

	for _, k := range kids {
		g.visit(k, id, false)
	}
}

// sanitizeLabel keeps labels inside Mermaid's quoted-string syntax.
func sanitizeLabel(label string) string {
	s := strings.ReplaceAll(label, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
