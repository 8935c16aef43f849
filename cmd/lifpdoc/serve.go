package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	lifpmcp "github.com/gorewood/lifpdoc/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run lifpdoc as a Model Context Protocol (MCP) server over stdio.

The standard library is parsed once at startup and exposed as read-only
tools, so agents writing lifp can look up functions without a REPL.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "lifpdoc": {
        "command": "lifpdoc",
        "args": ["serve", "--root", "/path/to/lifp"]
      }
    }
  }

Available tools: modules, lookup, search`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, printer)
			if err != nil {
				return err
			}
			_, modules, err := loadModules(cfg, printer)
			if err != nil {
				return err
			}
			server := lifpmcp.NewServer(buildVersion(), modules)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
