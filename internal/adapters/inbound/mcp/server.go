package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewRuncheckMCPServer creates an MCP server with the runcheck tools
// registered: validating a run configuration and inspecting the product
// schema.
func NewRuncheckMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"runcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
