package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aretw0/lineage"
	"github.com/aretw0/lineage/pkg/adapters/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts Lineage as an MCP Server, exposing hierarchy queries as tools and the
rendered hierarchy as resources.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("sse-port")
		watch, _ := cmd.Flags().GetBool("watch")

		loader, err := app.Loader()
		if err != nil {
			return err
		}
		h, err := app.Load(cmd.Context(), loader)
		if err != nil {
			return err
		}
		loaded = h

		srv := mcp.NewServer(h, strings.TrimSpace(lineage.Version))

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		g, ctx := errgroup.WithContext(ctx)
		if watch {
			g.Go(func() error {
				return app.WatchAndReload(ctx, loader, srv)
			})
		}

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			app.Logger.Info("Starting Lineage MCP Server (Stdio)")
			g.Go(func() error {
				// Stdio ends when the client closes stdin.
				defer cancel()
				return srv.ServeStdio()
			})
		case "sse":
			app.Logger.Info("Starting Lineage MCP Server (SSE)", "port", port)
			g.Go(func() error {
				err := srv.ServeSSE(ctx, port)
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			})
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}

		if err := g.Wait(); err != nil {
			return fmt.Errorf("MCP server execution failed: %w", err)
		}
		app.Logger.Info("MCP Server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("sse-port", 8080, "Port to listen on (only for SSE)")
	mcpCmd.Flags().Bool("watch", false, "Reload the hierarchy when the source changes")
}
