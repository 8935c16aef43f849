package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultSearchLimit caps search results when no limit is given.
const defaultSearchLimit = 20

// --- Shared types ---

// FunctionDoc is the documentation of one function or special form.
type FunctionDoc struct {
	Module      string `json:"module"      jsonschema:"module the function belongs to"`
	Name        string `json:"name"        jsonschema:"function name"`
	Description string `json:"description" jsonschema:"what the function does"`
	Example     string `json:"example"     jsonschema:"usage example in lifp syntax"`
}

// ModuleSummary describes one documented module.
type ModuleSummary struct {
	Name      string   `json:"name"      jsonschema:"module name"`
	Overview  string   `json:"overview"  jsonschema:"module overview text"`
	Functions []string `json:"functions" jsonschema:"names of documented functions"`
}

// --- Modules tool ---

// ModulesInput is the input for the modules tool (no parameters needed).
type ModulesInput struct{}

// ModulesOutput is the output for the modules tool.
type ModulesOutput struct {
	Count   int             `json:"count"   jsonschema:"number of modules"`
	Modules []ModuleSummary `json:"modules" jsonschema:"documented modules"`
}

func handleModules(catalog *catalog) mcp.ToolHandlerFor[ModulesInput, ModulesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ModulesInput) (*mcp.CallToolResult, ModulesOutput, error) {
		summaries := toModuleSummaries(catalog.modules)
		return nil, ModulesOutput{Count: len(summaries), Modules: summaries}, nil
	}
}

// --- Lookup tool ---

// LookupInput is the input for the lookup tool.
type LookupInput struct {
	Name string `json:"name" jsonschema:"function or special form name, e.g. math:max or def!"`
}

// LookupOutput is the output for the lookup tool.
type LookupOutput struct {
	Found   bool          `json:"found"             jsonschema:"whether any function matched"`
	Matches []FunctionDoc `json:"matches,omitempty" jsonschema:"matching functions"`
}

func handleLookup(catalog *catalog) mcp.ToolHandlerFor[LookupInput, LookupOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LookupInput) (*mcp.CallToolResult, LookupOutput, error) {
		if input.Name == "" {
			return nil, LookupOutput{}, errors.New("name is required")
		}
		matches := catalog.lookup(input.Name)
		return nil, LookupOutput{Found: len(matches) > 0, Matches: matches}, nil
	}
}

// --- Search tool ---

// SearchInput is the input for the search tool.
type SearchInput struct {
	Query string `json:"query"           jsonschema:"text to find in names and descriptions"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 20)"`
}

// SearchOutput is the output for the search tool.
type SearchOutput struct {
	Count   int           `json:"count"   jsonschema:"number of results returned"`
	Results []FunctionDoc `json:"results" jsonschema:"matching functions"`
}

func handleSearch(catalog *catalog) mcp.ToolHandlerFor[SearchInput, SearchOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		if input.Query == "" {
			return nil, SearchOutput{}, errors.New("query is required")
		}
		limit := input.Limit
		if limit <= 0 {
			limit = defaultSearchLimit
		}
		results := catalog.search(input.Query, limit)
		return nil, SearchOutput{Count: len(results), Results: results}, nil
	}
}
