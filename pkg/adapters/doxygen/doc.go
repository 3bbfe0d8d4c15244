// Package doxygen reads and writes the class hierarchy index that Doxygen
// emits as hierarchy.js in its HTML output.
//
// The index is a JavaScript assignment wrapping a JSON array. Every entry is
// a three element array: the class name, the documentation page (or null) and
// the nested entries of its subclasses (or null). A class that derives from
// several bases appears once under each of them; the first appearance is
// taken as its owning placement and later ones become realizations.
package doxygen
