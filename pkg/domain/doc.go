/*
Package domain contains the core tree model consumed by the LaTeX serializer.

It defines the capability contract a caller's tree type must satisfy to be drawn,
plus a stock node implementation. This package is kept pure and free of I/O.

# Key Entities

  - Node: Anything that can report a display label and an ordered list of child slots.
  - Child: A single child slot. It either holds a Node or is the absent marker,
    which the diagram draws as an empty-set placeholder.
  - Basic: A ready-made Node for callers that do not have their own tree type.
*/
package domain
