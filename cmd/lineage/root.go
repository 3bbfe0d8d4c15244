package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/lineage/internal/cli"
	"github.com/aretw0/lineage/internal/config"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/spf13/cobra"
)

var (
	// app is resolved once flags are parsed.
	app *cli.App
	// loaded is the last hierarchy a command opened; it feeds suggestions on error.
	loaded *hierarchy.Hierarchy
)

var rootCmd = &cobra.Command{
	Use:   "lineage",
	Short: "Lineage builds and queries class hierarchies",
	Long: `Lineage loads a class hierarchy from a Doxygen hierarchy.js index, a YAML or JSON
manifest, or a directory of Markdown documents, validates it and answers
ancestry queries, renders it, or serves it over HTTP and MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		a, err := cli.NewApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		app = a
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err, loaded))
		ctx.Cancel()
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("source", "s", ".", "Hierarchy source: a directory, a hierarchy.js index, or a .yaml/.yml/.json manifest")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format for rendering: text, mermaid or markdown")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("implicit-roots", false, "Treat parents that are referenced but never declared as roots")
}

// openHierarchy loads the configured source and remembers it for error reporting.
func openHierarchy(cmd *cobra.Command) (*hierarchy.Hierarchy, error) {
	h, err := app.Open(cmd.Context())
	if err != nil {
		return nil, err
	}
	loaded = h
	return h, nil
}
