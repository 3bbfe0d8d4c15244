/*
Package domain contains the core domain models of the Lineage hierarchy engine.

It defines the entities a hierarchy is made of, such as Nodes, Edges and the
error taxonomy raised while building or querying one. This package is kept pure
and free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Node: A named entity occupying one position in the forest.
  - Edge: A declaration that a child sits under a parent (owning) or realizes an interface (non-owning).
  - NameError: A classified failure carrying the offending name(s).
*/
package domain
