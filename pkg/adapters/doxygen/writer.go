package doxygen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/aretw0/lineage/pkg/hierarchy"
)

const (
	rootIndent = 4
	stepIndent = 2
)

// Encode writes h as a Doxygen hierarchy index.
// Realizing classes are listed without children under each interface they
// realize, after the interface's own subclasses. A class must be placed
// under its owner before any realization entry, so realizations of classes
// not yet written are collected and emitted at the end under a repeated
// entry for the interface.
func Encode(w io.Writer, h *hierarchy.Hierarchy) error {
	e := &encoder{
		w:        bufio.NewWriter(w),
		h:        h,
		written:  make(map[string]bool),
		deferred: make(map[string][]string),
	}
	e.w.WriteString("var hierarchy =\n[\n")
	if err := e.writeEntries(h.Roots(), rootIndent); err != nil {
		return err
	}
	e.writeDeferred(len(h.Roots()) > 0)
	e.w.WriteString("\n];\n")
	return e.w.Flush()
}

type encoder struct {
	w        *bufio.Writer
	h        *hierarchy.Hierarchy
	written  map[string]bool
	order    []string
	deferred map[string][]string
}

func (e *encoder) writeEntries(names []string, indent int) error {
	pad := strings.Repeat(" ", indent)
	for i, name := range names {
		if i > 0 {
			e.w.WriteString(",\n")
		}
		e.written[name] = true
		children, err := e.h.ChildrenOf(name)
		if err != nil {
			return err
		}
		realizers, err := e.h.RealizedBy(name)
		if err != nil {
			return err
		}

		e.w.WriteString(pad)
		e.openEntry(name)

		if len(children) == 0 {
			ready := e.ready(name, realizers)
			if len(ready) == 0 {
				e.w.WriteString("null ]")
				continue
			}
			e.w.WriteString("[\n")
			e.writeLeaves(ready, indent+stepIndent, false)
		} else {
			e.w.WriteString("[\n")
			if err := e.writeEntries(children, indent+stepIndent); err != nil {
				return err
			}
			e.writeLeaves(e.ready(name, realizers), indent+stepIndent, true)
		}
		e.w.WriteString("\n")
		e.w.WriteString(pad)
		e.w.WriteString("] ]")
	}
	return nil
}

// ready returns the realizers of iface already placed under their owner and
// defers the rest.
func (e *encoder) ready(iface string, realizers []string) []string {
	var ready []string
	for _, r := range realizers {
		if e.written[r] {
			ready = append(ready, r)
			continue
		}
		if _, ok := e.deferred[iface]; !ok {
			e.order = append(e.order, iface)
		}
		e.deferred[iface] = append(e.deferred[iface], r)
	}
	return ready
}

func (e *encoder) writeDeferred(separate bool) {
	pad := strings.Repeat(" ", rootIndent)
	for i, iface := range e.order {
		if separate || i > 0 {
			e.w.WriteString(",\n")
		}
		e.w.WriteString(pad)
		e.openEntry(iface)
		e.w.WriteString("[\n")
		e.writeLeaves(e.deferred[iface], rootIndent+stepIndent, false)
		e.w.WriteString("\n")
		e.w.WriteString(pad)
		e.w.WriteString("] ]")
	}
}

// openEntry writes the name and link of an entry, leaving the children open.
func (e *encoder) openEntry(name string) {
	n, _ := e.h.Node(name)
	e.w.WriteString("[ ")
	e.w.WriteString(quote(name))
	e.w.WriteString(", ")
	if n.Link == "" {
		e.w.WriteString("null")
	} else {
		e.w.WriteString(quote(n.Link))
	}
	e.w.WriteString(", ")
}

func (e *encoder) writeLeaves(names []string, indent int, after bool) {
	pad := strings.Repeat(" ", indent)
	for i, name := range names {
		if i > 0 || after {
			e.w.WriteString(",\n")
		}
		e.w.WriteString(pad)
		e.openEntry(name)
		e.w.WriteString("null ]")
	}
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
