package latex

import (
	"strings"

	"github.com/aretw0/latextree/pkg/domain"
)

// Document is an ordered collection of diagram blocks sharing one preamble.
// The zero value is an empty document ready to use.
type Document struct {
	blocks []string
}

// NewDocument creates a document holding one diagram block per root.
func NewDocument(roots ...domain.Child) *Document {
	d := &Document{}
	for _, r := range roots {
		d.AddTree(r)
	}
	return d
}

// AddTree renders root and appends it as a new diagram block.
func (d *Document) AddTree(root domain.Child) *Document {
	d.blocks = append(d.blocks, RenderTree(root))
	return d
}

// AddBlock appends a pre-rendered diagram block.
// The block must already carry TreeHeader and TreeFooter, as RenderTree output does.
func (d *Document) AddBlock(block string) *Document {
	d.blocks = append(d.blocks, block)
	return d
}

// Len returns the number of diagram blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// String returns the full LaTeX source.
func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString(FileHeader)
	for _, b := range d.blocks {
		sb.WriteString(b)
	}
	sb.WriteString(FileFooter)
	return sb.String()
}
