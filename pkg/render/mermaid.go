package render

import (
	"fmt"
	"strings"

	"github.com/aretw0/lineage/pkg/hierarchy"
)

// Overlay highlights part of a hierarchy in a Mermaid diagram.
type Overlay struct {
	// Focus is styled as the current node; its ancestors are styled as lineage.
	Focus string
	// Highlight lists extra nodes to style as lineage.
	Highlight []string
}

// Mermaid produces a Mermaid flowchart of the hierarchy.
// It applies semantic styling:
// - Root: ((Circle))
// - Inner node: ("Rounded")
// - Leaf: [Rectangle]
// Owning edges are drawn parent --> child; realizations as dotted child -. realizes .-> interface.
// Node IDs are dense (n0, n1, ...) in walk order; class names only appear in labels.
func Mermaid(h *hierarchy.Hierarchy, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make(map[string]string, h.Len())
	type realization struct{ child, iface string }
	var realizations []realization
	_ = h.Walk(func(e hierarchy.Entry) error {
		id := fmt.Sprintf("n%d", len(ids))
		ids[e.Name] = id

		opener, closer := "(", ")"
		switch {
		case e.Parent == "":
			opener, closer = "((", "))"
		case e.Leaf:
			opener, closer = "[", "]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escapeMermaidLabel(e.Name), closer))

		if e.Parent != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", ids[e.Parent], id))
		}
		for _, iface := range e.Realizes {
			realizations = append(realizations, realization{e.Name, iface})
		}
		return nil
	})

	// Realizations go last so every endpoint is already declared with its shape.
	for _, r := range realizations {
		sb.WriteString(fmt.Sprintf("    %s -. realizes .-> %s\n", ids[r.child], ids[r.iface]))
	}

	if overlay != nil {
		writeOverlay(&sb, ids, h, overlay)
	}

	return sb.String()
}

func writeOverlay(sb *strings.Builder, ids map[string]string, h *hierarchy.Hierarchy, overlay *Overlay) {
	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for contrast on light fills regardless of theme.
	sb.WriteString("    classDef lineage fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef focus fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	styled := make(map[string]bool)
	mark := func(name string) {
		id, ok := ids[name]
		if !ok || styled[id] {
			return
		}
		styled[id] = true
		sb.WriteString(fmt.Sprintf("    class %s lineage;\n", id))
	}

	if overlay.Focus != "" {
		if ancestors, err := h.AncestorsOf(overlay.Focus); err == nil {
			for _, a := range ancestors {
				mark(a)
			}
		}
	}
	for _, name := range overlay.Highlight {
		if name != overlay.Focus {
			mark(name)
		}
	}

	if id, ok := ids[overlay.Focus]; ok {
		sb.WriteString(fmt.Sprintf("    class %s focus;\n", id))
	}
}

func escapeMermaidLabel(label string) string {
	r := strings.NewReplacer(
		"\"", "#quot;",
		"<", "#lt;",
		">", "#gt;",
	)
	return r.Replace(label)
}
