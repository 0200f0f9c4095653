/*
Package dsl provides a fluent builder for constructing trees in Go code.

It is the quickest way to get a domain.Node for tests, examples and callers that
do not already own a tree type.

Example usage:

	root := dsl.New("A").
		Leaf("B").
		Absent().
		Build()

	fmt.Print(latex.RenderNode(domain.Of(root))) // [ .A [ .B  ] [ .$\varnothing$ ] ]

Nested subtrees are opened with Child and closed with Up:

	root := dsl.New("+").
		Child("*").Leaf("2").Leaf("x").Up().
		Leaf("1").
		Build()

For binary search trees, SearchTree inserts values in order and fills missing
left or right slots with the absent marker.
*/
package dsl
