package tui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of f, or 0 when it cannot be determined.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// ProfileFor returns the color profile to use when writing to f.
func ProfileFor(f *os.File) termenv.Profile {
	if !IsTerminal(f) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// StyleTree colors an indented text rendering: roots bold in the accent
// color and realization annotations faint. Other lines are left as is.
func StyleTree(text string, p termenv.Profile) string {
	if p == termenv.Ascii {
		return text
	}

	lines := strings.SplitAfter(text, "\n")
	var sb strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		newline := line[len(body):]
		if body == "" {
			sb.WriteString(line)
			continue
		}

		name, annotation := body, ""
		if i := strings.Index(body, " [realizes: "); i >= 0 {
			name, annotation = body[:i], body[i:]
		}

		if !strings.HasPrefix(name, " ") && !strings.HasPrefix(name, "\t") {
			sb.WriteString(p.String(name).Bold().Foreground(p.Color("#38bdf8")).String())
		} else {
			sb.WriteString(name)
		}
		if annotation != "" {
			sb.WriteString(p.String(annotation).Faint().String())
		}
		sb.WriteString(newline)
	}
	return sb.String()
}
