package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/modelprof/modelprof/internal/contract"
	mcp_internal "github.com/modelprof/modelprof/internal/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) (*mcp.CallToolResult, error) {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	return tool.Handler(context.Background(), req)
}

func TestMCPServerHandlers(t *testing.T) {
	baseCfg := &contract.Config{}
	s := mcp_internal.NewMCPServer(baseCfg, nil)

	profilePath := writeProfile(t, `{
  "name": "resnet18",
  "backend": "TorchBackend",
  "metrics": [
    {"key": "model_size", "friendly_name": "Model Size", "value": 44.59, "units": "MB", "comparative": "ratio"}
  ]
}`)

	t.Run("render_profile returns report and rows", func(t *testing.T) {
		res, err := callTool(t, s, "render_profile", map[string]any{
			"profile": profilePath,
		})
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		require.False(t, res.IsError)

		var payload map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &payload))
		assert.Equal(t, "resnet18", payload["name"])
		assert.Contains(t, payload["report"], "Model Profiler")
	})

	t.Run("render_profile missing file", func(t *testing.T) {
		res, err := callTool(t, s, "render_profile", map[string]any{
			"profile": "no-such-profile.json",
		})
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "profile rendering failed")
	})

	t.Run("compare_profiles missing target", func(t *testing.T) {
		res, err := callTool(t, s, "compare_profiles", map[string]any{
			"base_profile":   profilePath,
			"target_profile": "no-such-profile.json",
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "comparison failed")
	})

	t.Run("compare_profiles computes enhancement", func(t *testing.T) {
		targetPath := writeProfile(t, `{
  "name": "resnet18-q",
  "backend": "TFLiteBackend",
  "metrics": [
    {"key": "model_size", "friendly_name": "Model Size", "value": 22.295, "units": "MB", "comparative": "ratio"}
  ]
}`)
		res, err := callTool(t, s, "compare_profiles", map[string]any{
			"base_profile":   profilePath,
			"target_profile": targetPath,
		})
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"enhancement": "0.50x"`)
	})

	t.Run("list_display_order", func(t *testing.T) {
		res, err := callTool(t, s, "list_display_order", nil)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "eval_metric")
		assert.Contains(t, text, "inference_time")
	})
}
