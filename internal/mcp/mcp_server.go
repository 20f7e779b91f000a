// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/modelprof/modelprof/internal/contract"
)

// NewMCPServer initializes and configures the modelprof MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.ProfileStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Model Profiler Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: render_profile ---
	s.AddTool(mcp.NewTool("render_profile",
		mcp.WithDescription("Render the metric report for a single saved or on-disk model profile."),
		mcp.WithString("profile", mcp.Description("Path to a profile JSON file, or a saved profile name when from_store is set."), mcp.Required()),
		mcp.WithBoolean("from_store", mcp.Description("Resolve the profile name against the profile store instead of the filesystem.")),
		mcp.WithBoolean("raw_order", mcp.Description("Keep the profile's document order instead of the canonical display order.")),
	), h.handleRenderProfile)

	// --- 2. Tool: compare_profiles ---
	s.AddTool(mcp.NewTool("compare_profiles",
		mcp.WithDescription("Compare the metrics of two model profiles and compute per-metric enhancement cells."),
		mcp.WithString("base_profile", mcp.Description("The base profile for comparison."), mcp.Required()),
		mcp.WithString("target_profile", mcp.Description("The target profile for comparison."), mcp.Required()),
		mcp.WithBoolean("from_store", mcp.Description("Resolve both profile names against the profile store.")),
		mcp.WithBoolean("raw_order", mcp.Description("Keep document order instead of the canonical display order.")),
	), h.handleCompareProfiles)

	// --- 3. Tool: list_display_order ---
	s.AddTool(mcp.NewTool("list_display_order",
		mcp.WithDescription("List the canonical display order applied to well-known metric keys."),
	), h.handleListDisplayOrder)

	return s
}

// StartMCPServer starts the modelprof MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.ProfileStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
