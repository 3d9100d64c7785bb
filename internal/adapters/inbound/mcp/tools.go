package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/groundtrack/runcheck/internal/adapters/outbound/gitinfo"
	"github.com/groundtrack/runcheck/internal/adapters/outbound/schemaloader"
	"github.com/groundtrack/runcheck/internal/adapters/outbound/yamlloader"
	"github.com/groundtrack/runcheck/internal/application"
	"github.com/groundtrack/runcheck/internal/domain"
)

// registerTools registers all runcheck MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. runcheck_validate
	s.AddTool(
		mcplib.NewTool("runcheck_validate",
			mcplib.WithDescription("Validate a run-configuration file and return the full violation report as JSON"),
			mcplib.WithString("config",
				mcplib.Required(),
				mcplib.Description("Path to the run-configuration YAML file"),
			),
			mcplib.WithString("schema", mcplib.Description("Path to an external schema file (defaults to the built-in DSWx-HLS schema)")),
			mcplib.WithBoolean("strict", mcplib.Description("Reject keys not declared in the schema")),
		),
		handleValidate(),
	)

	// 2. runcheck_schema
	s.AddTool(
		mcplib.NewTool("runcheck_schema",
			mcplib.WithDescription("Return the schema a run configuration is validated against, as JSON"),
			mcplib.WithString("schema", mcplib.Description("Path to an external schema file (defaults to the built-in DSWx-HLS schema)")),
		),
		handleSchema(),
	)
}

func handleValidate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		configPath, err := request.RequireString("config")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		schemaPath, _ := args["schema"].(string)
		strict, _ := args["strict"].(bool)

		svc := application.NewValidateService(yamlloader.New(), schemaloader.New(), gitinfo.New())
		report, err := svc.Validate(configPath, application.Options{
			SchemaPath: schemaPath,
			Strict:     strict,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSchema() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		schema := domain.DSWxHLSSchema()

		if schemaPath, _ := request.GetArguments()["schema"].(string); schemaPath != "" {
			loaded, err := schemaloader.New().Load(schemaPath)
			if err != nil {
				return errorResult(fmt.Sprintf("loading schema failed: %v", err)), nil
			}
			schema = loaded
		}

		return jsonResult(schema)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
