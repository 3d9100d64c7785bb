package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/groundtrack/runcheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the runcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start runcheck MCP server (stdio)",
		Long:  "Start the runcheck MCP server using stdio transport. This lets AI assistants validate run configurations and inspect product schemas.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewRuncheckMCPServer()
			return server.ServeStdio(s)
		},
	}
}
