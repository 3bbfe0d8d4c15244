/*
Package hierarchy builds and queries named type hierarchies.

A Hierarchy is a forest of uniquely named nodes. Each node has at most one
owning parent; a node may additionally realize any number of interfaces through
non-owning edges, which are kept out of ancestor and depth queries.

Build consumes a flat edge list in any order: edges whose parent is declared
later are deferred and retried once every edge has been seen.

	h, err := hierarchy.Build([]domain.Edge{
		domain.Inherits("Dialog", "LoggingBaseClass"),
		domain.Root("LoggingBaseClass"),
		domain.Root("QDialog"),
		domain.Realizes("Dialog", "QDialog"),
	})
	if err != nil {
		// errors.Is(err, domain.ErrCyclicReference) etc.
	}

	ancestors, _ := h.AncestorsOf("Dialog") // ["LoggingBaseClass"]
	for name, err := range h.DescendantsOf("LoggingBaseClass") {
		...
	}

# Lifecycle

A Hierarchy is immutable once Build returns. It exposes no mutating API and
can be shared between goroutines for concurrent read-only queries.
*/
package hierarchy
