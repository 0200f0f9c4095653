/*
Package schema decodes declarative tree definitions written in YAML or JSON.

A definition is a mapping with a label and an optional ordered list of children.
A null child marks an absent slot and a scalar child is shorthand for a leaf:

	label: 5
	children:
	  - label: 3
	    children: [1, 4]
	  - null

Labels may be written as numbers or booleans; they are converted to their text form.
Unknown keys are rejected so typos such as "chidren" do not silently drop subtrees.

Several trees can be kept in one YAML stream, separated by "---". ParseAll returns one
root per document, in order, which maps naturally onto one diagram block per tree.

Decoded definitions implement domain.Node directly, so they can be passed to the
latex package without conversion.
*/
package schema
