package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lineage/internal/presentation/tui"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the hierarchy",
	Long: `Renders the whole forest, or the subtree under --focus, as indented text,
a Mermaid diagram or a Markdown outline (see --format).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(app.Config.Format)
		if err != nil {
			return err
		}
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		return writeRendering(cmd, h, f)
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the hierarchy as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph TD). With --focus, the focused node and its lineage are highlighted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHierarchy(cmd)
		if err != nil {
			return err
		}
		return writeRendering(cmd, h, render.FormatMermaid)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(graphCmd)

	renderCmd.Flags().String("focus", "", "Only render the subtree under this node")
	renderCmd.Flags().Bool("links", false, "Append each node's link")
	renderCmd.Flags().Bool("realizations", false, "Annotate realized interfaces")
	renderCmd.Flags().Bool("pretty", false, "Style the output for the terminal (Markdown through glamour)")

	graphCmd.Flags().String("focus", "", "Highlight this node and its ancestors")
}

func writeRendering(cmd *cobra.Command, h *hierarchy.Hierarchy, f render.Format) error {
	focus, _ := cmd.Flags().GetString("focus")

	var opts []render.TextOption
	if links, _ := cmd.Flags().GetBool("links"); links {
		opts = append(opts, render.WithLinks())
	}
	if realizations, _ := cmd.Flags().GetBool("realizations"); realizations {
		opts = append(opts, render.WithRealizations())
	}

	out, err := render.Render(h, f, focus, opts...)
	if err != nil {
		return err
	}
	app.Metrics.ObserveRender(string(f), false)

	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		out, err = prettify(out, f)
		if err != nil {
			return err
		}
	}
	app.Printf("%s", out)
	return nil
}

// prettify styles rendered output for stdout. Markdown goes through glamour;
// text trees get root highlighting when stdout supports color.
func prettify(out string, f render.Format) (string, error) {
	switch f {
	case render.FormatMarkdown:
		md, err := tui.NewRenderer(tui.Width(os.Stdout))
		if err != nil {
			return "", err
		}
		styled, err := md(out)
		if err != nil {
			return "", fmt.Errorf("failed to render markdown: %w", err)
		}
		return styled, nil
	case render.FormatText:
		return tui.StyleTree(out, tui.ProfileFor(os.Stdout)), nil
	}
	return out, nil
}
