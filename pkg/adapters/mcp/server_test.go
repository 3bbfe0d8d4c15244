package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	h, err := hierarchy.Build([]domain.Edge{
		domain.Root("LoggingBaseClass"),
		domain.Inherits("AbstractItemModel", "LoggingBaseClass"),
		domain.Inherits("AbstractListModel", "AbstractItemModel"),
		domain.Root("QAbstractItemModel"),
		domain.Realizes("AbstractItemModel", "QAbstractItemModel"),
	})
	require.NoError(t, err)
	return NewServer(h, "test")
}

func callRender(t *testing.T, s *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "render"
	req.Params.Arguments = args
	result, err := s.handleRender(context.Background(), req)
	require.NoError(t, err)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandlers_Queries(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	args := map[string]interface{}{"name": "AbstractListModel"}

	ancestors, err := s.handleAncestors(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, []string{"AbstractItemModel", "LoggingBaseClass"}, ancestors.Names)

	depth, err := s.handleDepth(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, 2, depth.Depth)

	descendants, err := s.handleDescendants(ctx, mcp.CallToolRequest{}, map[string]interface{}{"name": "LoggingBaseClass"})
	require.NoError(t, err)
	assert.Equal(t, []string{"LoggingBaseClass", "AbstractItemModel", "AbstractListModel"}, descendants.Names)

	leaves, err := s.handleLeaves(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"AbstractListModel", "QAbstractItemModel"}, leaves.Names)

	realizes, err := s.handleRealizes(ctx, mcp.CallToolRequest{}, map[string]interface{}{"name": "QAbstractItemModel"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, realizes.Realizes)
	assert.Equal(t, []string{"AbstractItemModel"}, realizes.RealizedBy)
}

func TestHandlers_UnknownNode(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleAncestors(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"name": "AbstractListModle"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
	assert.Contains(t, err.Error(), "did you mean AbstractListModel")
}

func TestHandlers_InvalidArguments(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleDepth(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"name": 42})
	assert.Error(t, err)
}

func TestHandleRender(t *testing.T) {
	s := newTestServer(t)

	result := callRender(t, s, map[string]any{})
	assert.False(t, result.IsError)
	assert.Equal(t, render.Text(s.current.Load()), resultText(t, result))

	result = callRender(t, s, map[string]any{"format": "text", "focus": "AbstractItemModel"})
	assert.Equal(t, "AbstractItemModel\n  AbstractListModel\n", resultText(t, result))

	result = callRender(t, s, map[string]any{"format": "svg"})
	assert.True(t, result.IsError)

	result = callRender(t, s, map[string]any{"focus": "Nope"})
	assert.True(t, result.IsError)
}

func TestSetHierarchy(t *testing.T) {
	s := newTestServer(t)
	next, err := hierarchy.Build([]domain.Edge{domain.Root("QObject")})
	require.NoError(t, err)

	s.SetHierarchy(next)

	leaves, err := s.handleLeaves(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"QObject"}, leaves.Names)
}
