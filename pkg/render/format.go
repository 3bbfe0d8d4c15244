package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/lineage/pkg/hierarchy"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMermaid  Format = "mermaid"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown render format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatMermaid, FormatMarkdown}
}

// ParseFormat resolves a format name. An empty name means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatMermaid, FormatMarkdown:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatMarkdown {
		return "text/markdown; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Render renders h in format f. A non-empty focus restricts text output to the
// focused subtree and highlights the focused lineage in Mermaid output;
// Markdown always renders the whole forest.
func Render(h *hierarchy.Hierarchy, f Format, focus string, opts ...TextOption) (string, error) {
	if focus != "" {
		if _, err := h.DepthOf(focus); err != nil {
			return "", err
		}
	}

	switch f {
	case FormatText, "":
		if focus != "" {
			return Subtree(h, focus, opts...)
		}
		return Text(h, opts...), nil
	case FormatMermaid:
		var overlay *Overlay
		if focus != "" {
			overlay = &Overlay{Focus: focus}
		}
		return Mermaid(h, overlay), nil
	case FormatMarkdown:
		return Markdown(h), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, f)
}
