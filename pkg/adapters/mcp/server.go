// Package mcp exposes hierarchy queries as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

const (
	hierarchyURI = "lineage://hierarchy"
	edgesURI     = "lineage://edges"
)

// NamesResponse is the structured output of list-valued queries.
type NamesResponse struct {
	Name  string   `json:"name,omitempty" jsonschema_description:"The node the query was asked about"`
	Names []string `json:"names" jsonschema_description:"Resulting node names in query order"`
}

// DepthResponse is the structured output of depth_of.
type DepthResponse struct {
	Name  string `json:"name" jsonschema_description:"The node the query was asked about"`
	Depth int    `json:"depth" jsonschema_description:"Number of owning ancestors; roots have depth 0"`
}

// RealizesResponse is the structured output of realizes.
type RealizesResponse struct {
	Name       string   `json:"name" jsonschema_description:"The node the query was asked about"`
	Realizes   []string `json:"realizes" jsonschema_description:"Interfaces the node realizes"`
	RealizedBy []string `json:"realized_by" jsonschema_description:"Nodes realizing this node"`
}

type nameArgs struct {
	Name string `mapstructure:"name"`
}

type renderArgs struct {
	Format string `mapstructure:"format"`
	Focus  string `mapstructure:"focus"`
}

// Server exposes a hierarchy as an MCP server.
type Server struct {
	current   atomic.Pointer[hierarchy.Hierarchy]
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance serving h.
func NewServer(h *hierarchy.Hierarchy, version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("lineage-mcp", version),
	}
	s.current.Store(h)
	s.registerTools()
	s.registerResources()
	return s
}

// SetHierarchy replaces the served hierarchy.
func (s *Server) SetHierarchy(h *hierarchy.Hierarchy) {
	s.current.Store(h)
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("ancestors_of",
		mcp.WithDescription("List the owning ancestors of a class, nearest first."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Class name")),
		mcp.WithOutputSchema[NamesResponse](),
	), mcp.NewStructuredToolHandler(s.handleAncestors))

	s.mcpServer.AddTool(mcp.NewTool("descendants_of",
		mcp.WithDescription("List a class and everything below it in pre-order."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Class name")),
		mcp.WithOutputSchema[NamesResponse](),
	), mcp.NewStructuredToolHandler(s.handleDescendants))

	s.mcpServer.AddTool(mcp.NewTool("depth_of",
		mcp.WithDescription("Number of owning ancestors of a class."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Class name")),
		mcp.WithOutputSchema[DepthResponse](),
	), mcp.NewStructuredToolHandler(s.handleDepth))

	s.mcpServer.AddTool(mcp.NewTool("leaves",
		mcp.WithDescription("List every class without subclasses."),
		mcp.WithOutputSchema[NamesResponse](),
	), mcp.NewStructuredToolHandler(s.handleLeaves))

	s.mcpServer.AddTool(mcp.NewTool("realizes",
		mcp.WithDescription("List the interfaces a class realizes and the classes realizing it."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Class name")),
		mcp.WithOutputSchema[RealizesResponse](),
	), mcp.NewStructuredToolHandler(s.handleRealizes))

	s.mcpServer.AddTool(mcp.NewTool("render",
		mcp.WithDescription("Render the hierarchy as indented text, a Mermaid flowchart or Markdown."),
		mcp.WithString("format", mcp.Description("text (default), mermaid or markdown")),
		mcp.WithString("focus", mcp.Description("Class to focus: subtree for text, highlighted lineage for mermaid")),
	), s.handleRender)
}

func decodeArgs(args map[string]interface{}, out any) error {
	if err := mapstructure.Decode(args, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) handleAncestors(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NamesResponse, error) {
	var in nameArgs
	if err := decodeArgs(args, &in); err != nil {
		return NamesResponse{}, err
	}
	h := s.current.Load()
	names, err := h.AncestorsOf(in.Name)
	if err != nil {
		return NamesResponse{}, withSuggestions(h, err)
	}
	return NamesResponse{Name: in.Name, Names: names}, nil
}

func (s *Server) handleDescendants(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NamesResponse, error) {
	var in nameArgs
	if err := decodeArgs(args, &in); err != nil {
		return NamesResponse{}, err
	}
	h := s.current.Load()
	names, err := h.Descendants(in.Name)
	if err != nil {
		return NamesResponse{}, withSuggestions(h, err)
	}
	return NamesResponse{Name: in.Name, Names: names}, nil
}

func (s *Server) handleDepth(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DepthResponse, error) {
	var in nameArgs
	if err := decodeArgs(args, &in); err != nil {
		return DepthResponse{}, err
	}
	h := s.current.Load()
	depth, err := h.DepthOf(in.Name)
	if err != nil {
		return DepthResponse{}, withSuggestions(h, err)
	}
	return DepthResponse{Name: in.Name, Depth: depth}, nil
}

func (s *Server) handleLeaves(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NamesResponse, error) {
	return NamesResponse{Names: s.current.Load().Leaves()}, nil
}

func (s *Server) handleRealizes(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RealizesResponse, error) {
	var in nameArgs
	if err := decodeArgs(args, &in); err != nil {
		return RealizesResponse{}, err
	}
	h := s.current.Load()
	realizes, err := h.Realizes(in.Name)
	if err != nil {
		return RealizesResponse{}, withSuggestions(h, err)
	}
	realizedBy, err := h.RealizedBy(in.Name)
	if err != nil {
		return RealizesResponse{}, err
	}
	return RealizesResponse{Name: in.Name, Realizes: realizes, RealizedBy: realizedBy}, nil
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in renderArgs
	if err := decodeArgs(request.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := render.ParseFormat(in.Format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h := s.current.Load()
	out, err := render.Render(h, format, in.Focus)
	if err != nil {
		return mcp.NewToolResultError(withSuggestions(h, err).Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

// withSuggestions appends "did you mean" hints to unknown node errors.
func withSuggestions(h *hierarchy.Hierarchy, err error) error {
	if !errors.Is(err, domain.ErrUnknownNode) {
		return err
	}
	name, _ := domain.OffendingName(err)
	suggestions := h.Suggest(name, 3)
	if len(suggestions) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(hierarchyURI, "Class Hierarchy",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      hierarchyURI,
				MIMEType: "text/plain",
				Text:     render.Text(s.current.Load(), render.WithRealizations()),
			},
		}, nil
	})

	s.mcpServer.AddResource(mcp.NewResource(edgesURI, "Class Hierarchy Edges",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.current.Load().Edges())
		if err != nil {
			return nil, fmt.Errorf("failed to encode edges: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      edgesURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
