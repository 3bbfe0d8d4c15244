/*
Package ports defines the driven ports (interfaces) for the Lineage engine.

These interfaces decouple the hierarchy core from external implementations, allowing
hierarchies to be sourced from and persisted to various backends.

# Key Interfaces

  - EdgeLoader: Produces the flat edge list a hierarchy is built from (e.g., Doxygen, YAML, Loam, Memory).
  - SnapshotStore: Persists named edge lists so a hierarchy can be rebuilt later (e.g., Redis, Memory).
*/
package ports
