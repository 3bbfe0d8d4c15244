/*
Package lineage models named type hierarchies: forests of classes with owning
parent/child edges and optional, non-owning interface realizations.

A hierarchy is built once from a flat edge list and is immutable afterwards, so
any number of goroutines can query and render it concurrently. Edge lists come
from Go code (pkg/dsl), Doxygen hierarchy.js indexes, YAML manifests or a Loam
repository of class documents.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/lineage"
		"github.com/aretw0/lineage/pkg/render"
	)

	func main() {
		h, err := lineage.Open(context.Background(), "docs/html/hierarchy.js")
		if err != nil {
			log.Fatal(err)
		}

		ancestors, err := h.AncestorsOf("MdiWindow")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ancestors) // [MainWindowBase LoggingBaseClass]

		fmt.Print(render.Text(h, render.WithRealizations()))
	}

# Errors

Build and query failures wrap the sentinels in pkg/domain (ErrDuplicateName,
ErrUnknownParent, ErrUnknownNode, ErrCyclicReference) and carry the offending
names in a *domain.NameError.

# Packages

  - pkg/hierarchy: builder and query engine.
  - pkg/render: text, Mermaid and Markdown renderers.
  - pkg/adapters: edge loaders, snapshot stores, HTTP and MCP servers.
*/
package lineage
