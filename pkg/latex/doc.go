/*
Package latex serializes trees into tikz-qtree diagrams and writes them as LaTeX documents.

A diagram is produced by a depth-first walk over a domain.Node. Each node becomes a
bracketed expression holding its label followed by the expressions of its children,
in order. An absent child slot is drawn as an empty-set leaf instead of being skipped,
so the left/right shape of a binary tree is preserved.

	root := domain.Branch("A", domain.Of(domain.Leaf("B")), domain.Absent())
	latex.RenderNode(domain.Of(root)) // [ .A [ .B  ] [ .$\varnothing$ ] ]

A document wraps one or more diagram blocks with a fixed preamble (article class with
the tikz, amssymb and tikz-qtree packages) and closer. The Writer persists documents
under an output directory, creating it when missing and overwriting existing files.

Labels are emitted verbatim. Callers that cannot guarantee markup-safe labels should
pass them through Escape first.
*/
package latex
