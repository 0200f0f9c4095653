package latextree_test

import (
	"fmt"

	"github.com/aretw0/latextree/pkg/dsl"
	"github.com/aretw0/latextree/pkg/latex"
)

// Draws a binary search tree; missing children appear as empty-set leaves.
func Example() {
	root := dsl.SearchTree(5, 3, 8, 4)
	fmt.Println(latex.RenderNode(root))
	// Output: [ .5 [ .3 [ .$\varnothing$ ] [ .4  ] ] [ .8  ] ]
}
