/*
Package latextree turns in-memory trees into tikz-qtree diagrams inside a LaTeX document.

Any tree type can be drawn once it satisfies domain.Node: a label, plus an ordered list
of child slots where a missing subtree is an explicit absent marker rather than a gap.
Absent slots are drawn as an empty-set leaf so the shape of binary trees is preserved.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/latextree"
		"github.com/aretw0/latextree/pkg/domain"
	)

	func main() {
		root := domain.Branch("A",
			domain.Of(domain.Leaf("B")),
			domain.Absent(),
		)

		// Writes latex/latex_tree.tex relative to the working directory.
		if err := latextree.WriteTree(domain.Of(root)); err != nil {
			log.Fatal(err)
		}
	}

The generated document needs the tikz, amssymb and tikz-qtree packages.

# Layout

  - pkg/domain: the Node contract and a stock node type.
  - pkg/latex: rendering, multi-tree documents and the file writer.
  - pkg/dsl: a fluent builder and a binary search tree helper.
  - pkg/schema: YAML/JSON tree definitions.
  - pkg/adapters: document stores (file, memory, Redis), HTTP and MCP servers.

Labels are written verbatim; see latex.Escape for markup-safe labels.
*/
package latextree
