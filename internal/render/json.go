package render

import (
	"encoding/json"
	"fmt"

	"github.com/gorewood/lifpdoc/internal/docblock"
)

// Catalog is the JSON documentation document. Functions are keyed by record
// name; records without a name are left out and a later duplicate replaces
// an earlier one.
type Catalog struct {
	Version   string                     `json:"version"`
	Functions map[string]docblock.Record `json:"functions"`
}

// NewCatalog indexes the named records of all modules.
func NewCatalog(meta Meta, modules []*docblock.Module) Catalog {
	catalog := Catalog{
		Version:   meta.Version,
		Functions: make(map[string]docblock.Record),
	}
	for _, module := range modules {
		for _, record := range module.Records {
			if record.Name == "" {
				continue
			}
			catalog.Functions[record.Name] = record
		}
	}
	return catalog
}

// JSON renders the catalog as indented JSON with a trailing newline.
func JSON(meta Meta, modules []*docblock.Module) (string, error) {
	data, err := json.MarshalIndent(NewCatalog(meta, modules), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding docs catalog: %w", err)
	}
	return string(data) + "\n", nil
}
