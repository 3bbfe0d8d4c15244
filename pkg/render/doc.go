// Package render turns a built hierarchy into text.
//
// All renderers are pure functions of the hierarchy: the same hierarchy always
// renders to byte-identical output.
package render
