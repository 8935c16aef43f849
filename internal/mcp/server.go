// Package mcp provides a Model Context Protocol server for lifpdoc.
// It exposes the extracted standard-library documentation as read-only
// tools that any MCP-capable agent can query.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/lifpdoc/internal/docblock"
)

// NewServer creates an MCP server with all lifpdoc tools registered.
func NewServer(version string, modules []*docblock.Module) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lifpdoc",
		Version: version,
	}, nil)
	registerTools(server, newCatalog(modules))
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all lifpdoc tools to the server.
func registerTools(server *mcp.Server, catalog *catalog) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "modules",
		Description: "List the documented standard-library modules with their overview text and function names.",
		Annotations: readOnlyAnnotations(),
	}, handleModules(catalog))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lookup",
		Description: "Get the description and usage example of a standard-library function or special form by exact name (case-insensitive).",
		Annotations: readOnlyAnnotations(),
	}, handleLookup(catalog))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Find standard-library functions whose name or description contains the query (case-insensitive).",
		Annotations: readOnlyAnnotations(),
	}, handleSearch(catalog))
}
