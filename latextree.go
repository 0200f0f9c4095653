package latextree

import (
	"github.com/aretw0/latextree/pkg/domain"
	"github.com/aretw0/latextree/pkg/latex"
)

// Version is the current release.
const Version = "0.3.0"

// RenderTree returns one diagram block for root.
func RenderTree(root domain.Child) string {
	return latex.RenderTree(root)
}

// WriteTree writes a single-tree document to latex/latex_tree.tex.
func WriteTree(root domain.Child) error {
	return latex.NewWriter().WriteTree(root, latex.DefaultFileName)
}

// WriteTreeAs writes a single-tree document to latex/<fileName>.
// No extension is added to fileName.
func WriteTreeAs(root domain.Child, fileName string) error {
	return latex.NewWriter().WriteTree(root, fileName)
}

// WriteBlock writes a pre-rendered diagram block (RenderTree output) to latex/latex_tree.tex.
func WriteBlock(block string) error {
	return latex.NewWriter().WriteBlock(block, latex.DefaultFileName)
}

// WriteBlockAs writes a pre-rendered diagram block to latex/<fileName>.
func WriteBlockAs(block, fileName string) error {
	return latex.NewWriter().WriteBlock(block, fileName)
}

// WriteDocument writes a multi-tree document to latex/<fileName>.
// An empty fileName means latex_tree.tex.
func WriteDocument(doc *latex.Document, fileName string) error {
	return latex.NewWriter().WriteDocument(doc, fileName)
}
