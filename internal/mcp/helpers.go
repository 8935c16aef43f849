package mcp

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/gorewood/lifpdoc/internal/docblock"
)

// catalog answers queries over extracted modules.
type catalog struct {
	modules []*docblock.Module
}

func newCatalog(modules []*docblock.Module) *catalog {
	return &catalog{modules: modules}
}

// each calls fn for every record, in module then record order, until fn
// returns false.
func (c *catalog) each(fn func(module *docblock.Module, record docblock.Record) bool) {
	for _, module := range c.modules {
		for _, record := range module.Records {
			if !fn(module, record) {
				return
			}
		}
	}
}

// lookup returns every record named name, ignoring case.
func (c *catalog) lookup(name string) []FunctionDoc {
	name = strings.TrimSpace(name)
	var matches []FunctionDoc
	c.each(func(module *docblock.Module, record docblock.Record) bool {
		if record.Name != "" && strings.EqualFold(record.Name, name) {
			matches = append(matches, toFunctionDoc(module, record))
		}
		return true
	})
	return matches
}

// search returns up to limit records whose name or description contains
// query, ignoring case. A non-positive limit means no limit.
func (c *catalog) search(query string, limit int) []FunctionDoc {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	results := []FunctionDoc{}
	if needle == "" {
		return results
	}

	c.each(func(module *docblock.Module, record docblock.Record) bool {
		if strings.Contains(fold.String(record.Name), needle) ||
			strings.Contains(fold.String(record.Description), needle) {
			results = append(results, toFunctionDoc(module, record))
		}
		return limit <= 0 || len(results) < limit
	})
	return results
}

// toFunctionDoc converts a record to its tool output form.
func toFunctionDoc(module *docblock.Module, record docblock.Record) FunctionDoc {
	return FunctionDoc{
		Module:      module.Name,
		Name:        record.Name,
		Description: record.Description,
		Example:     record.Example,
	}
}

// toModuleSummaries converts modules to ModuleSummary slice.
func toModuleSummaries(modules []*docblock.Module) []ModuleSummary {
	result := make([]ModuleSummary, 0, len(modules))
	for _, module := range modules {
		names := make([]string, 0, len(module.Records))
		for _, record := range module.Records {
			if record.Name != "" {
				names = append(names, record.Name)
			}
		}
		result = append(result, ModuleSummary{
			Name:      module.Name,
			Overview:  strings.TrimSpace(strings.Join(module.Header, "\n")),
			Functions: names,
		})
	}
	return result
}
