package cmd

import (
	"github.com/modelprof/modelprof/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Modelprof MCP server",
	Long:  `Launch an MCP server that allows AI agents to render and compare model profiles via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup runs without positional profile arguments; the MCP tools
		// supply profile references per request.
		return sharedSetup(cmd, args)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(cmd.Context(), cfg, store)
	},
}
