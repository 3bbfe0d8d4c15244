package render

import (
	"strings"

	"github.com/aretw0/lineage/pkg/hierarchy"
)

// Markdown renders the hierarchy as a nested bullet list. Roots are bold;
// nodes with a display link become Markdown links.
func Markdown(h *hierarchy.Hierarchy) string {
	var sb strings.Builder
	_ = h.Walk(func(e hierarchy.Entry) error {
		sb.WriteString(strings.Repeat("  ", e.Depth))
		sb.WriteString("- ")

		label := escapeMarkdown(e.Name)
		if e.Link != "" {
			label = "[" + label + "](" + e.Link + ")"
		}
		if e.Depth == 0 {
			label = "**" + label + "**"
		}
		sb.WriteString(label)

		if len(e.Realizes) > 0 {
			sb.WriteString(" _(realizes ")
			for i, iface := range e.Realizes {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString("`" + iface + "`")
			}
			sb.WriteString(")_")
		}
		sb.WriteByte('\n')
		return nil
	})
	return sb.String()
}

func escapeMarkdown(s string) string {
	r := strings.NewReplacer(
		"<", "\\<",
		">", "\\>",
		"*", "\\*",
		"_", "\\_",
	)
	return r.Replace(s)
}
