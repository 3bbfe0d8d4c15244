package render

import (
	"strings"

	"github.com/aretw0/lineage/pkg/hierarchy"
)

// TextOption configures Text.
type TextOption func(*textConfig)

type textConfig struct {
	indent       string
	links        bool
	realizations bool
}

// WithIndent replaces the two-space indentation unit.
func WithIndent(unit string) TextOption {
	return func(c *textConfig) {
		c.indent = unit
	}
}

// WithLinks appends each node's display link as " <link>".
func WithLinks() TextOption {
	return func(c *textConfig) {
		c.links = true
	}
}

// WithRealizations appends realized interfaces as " [realizes: A, B]".
func WithRealizations() TextOption {
	return func(c *textConfig) {
		c.realizations = true
	}
}

// Text renders each root on its own line with children indented one unit per depth level.
func Text(h *hierarchy.Hierarchy, opts ...TextOption) string {
	cfg := newTextConfig(opts)

	var sb strings.Builder
	_ = h.Walk(func(e hierarchy.Entry) error {
		cfg.writeLine(&sb, e, e.Depth)
		return nil
	})
	return sb.String()
}

// Subtree renders the subtree rooted at name as Text would, with name at depth zero.
func Subtree(h *hierarchy.Hierarchy, name string, opts ...TextOption) (string, error) {
	cfg := newTextConfig(opts)
	base, err := h.DepthOf(name)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	err = h.WalkFrom(name, func(e hierarchy.Entry) error {
		cfg.writeLine(&sb, e, e.Depth-base)
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func newTextConfig(opts []TextOption) textConfig {
	cfg := textConfig{indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c textConfig) writeLine(sb *strings.Builder, e hierarchy.Entry, depth int) {
	sb.WriteString(strings.Repeat(c.indent, depth))
	sb.WriteString(e.Name)
	if c.links && e.Link != "" {
		sb.WriteString(" <")
		sb.WriteString(e.Link)
		sb.WriteString(">")
	}
	if c.realizations && len(e.Realizes) > 0 {
		sb.WriteString(" [realizes: ")
		sb.WriteString(strings.Join(e.Realizes, ", "))
		sb.WriteString("]")
	}
	sb.WriteByte('\n')
}
