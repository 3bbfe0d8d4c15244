package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{` _ _                            `, "#34d399"},
	{`| (_)_ __   ___  __ _  __ _  ___ `, "#2dd4bf"},
	{`| | | '_ \ / _ \/ _' |/ _' |/ _ \`, "#22d3ee"},
	{`| | | | | |  __/ (_| | (_| |  __/`, "#38bdf8"},
	{`|_|_|_| |_|\___|\__,_|\__, |\___|`, "#60a5fa"},
	{`                      |___/      `, "#818cf8"},
}

// PrintBanner writes the lineage banner followed by the version.
// Colors are dropped when w's profile is Ascii.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, p.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintf(w, "%s\n\n", p.String("  v"+strings.TrimSpace(version)).Faint())
}
