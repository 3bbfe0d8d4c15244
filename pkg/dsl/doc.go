/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically declaring Lineage hierarchies.

It allows developers to describe class forests using a type-safe, fluent builder pattern
instead of relying on external YAML or Doxygen files. This is particularly useful for
unit testing and for hierarchies generated from code.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/lineage/pkg/dsl"
		"github.com/aretw0/lineage/pkg/render"
	)

	func main() {
		b := dsl.New()

		base := b.Add("LoggingBaseClass")
		base.Child("Dialog").Link("classDialog.html").Realizes("QDialog")
		base.Child("MainWindowBase").Child("MdiWindow")

		b.Add("QDialog")

		h, err := b.Build()
		if err != nil {
			panic(err)
		}
		fmt.Print(render.Text(h))
	}
*/
package dsl
