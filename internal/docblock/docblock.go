package docblock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default annotation tokens for lifp C sources.
const (
	DefaultHeaderPrefixWidth = 3 // "// "
	DefaultHeaderEnd         = "___HEADER_END___"
	DefaultOpen              = "/**"
	DefaultClose             = "*/"
	DefaultNameTag           = "@name"
	DefaultExampleTag        = "@example"
	DefaultContinuation      = "*"
	DefaultTagPrefix         = "@"
)

// Syntax describes the comment convention of the documented sources.
type Syntax struct {
	// HeaderPrefixWidth is the number of characters stripped from the start
	// of every header line (the comment leader).
	HeaderPrefixWidth int `yaml:"header_prefix_width" validate:"gte=0"`
	// HeaderEnd terminates the header block. The marker line is excluded.
	HeaderEnd    string `yaml:"header_end"    validate:"required"`
	Open         string `yaml:"open"          validate:"required"`
	Close        string `yaml:"close"         validate:"required"`
	NameTag      string `yaml:"name_tag"      validate:"required"`
	ExampleTag   string `yaml:"example_tag"   validate:"required"`
	Continuation string `yaml:"continuation"`
	TagPrefix    string `yaml:"tag_prefix"`
}

// DefaultSyntax returns the syntax used by the lifp standard library.
func DefaultSyntax() Syntax {
	return Syntax{
		HeaderPrefixWidth: DefaultHeaderPrefixWidth,
		HeaderEnd:         DefaultHeaderEnd,
		Open:              DefaultOpen,
		Close:             DefaultClose,
		NameTag:           DefaultNameTag,
		ExampleTag:        DefaultExampleTag,
		Continuation:      DefaultContinuation,
		TagPrefix:         DefaultTagPrefix,
	}
}

// Record is one documented function or macro.
type Record struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Module is the documentation extracted from one source file.
// Records are sorted by name, case-insensitively.
type Module struct {
	Name    string   `json:"name"`
	Header  []string `json:"header"`
	Records []Record `json:"records"`
}

// ModuleName derives the module identifier from a file path:
// the base name with its extension removed.
func ModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile reads a source file and extracts its documentation.
func ParseFile(path string, syntax Syntax) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", path, err)
	}

	header, records := Extract(string(data), syntax)
	return &Module{
		Name:    ModuleName(path),
		Header:  header,
		Records: records,
	}, nil
}

// ParseFiles parses each path in order. The first read failure aborts.
func ParseFiles(paths []string, syntax Syntax) ([]*Module, error) {
	modules := make([]*Module, 0, len(paths))
	for _, path := range paths {
		module, err := ParseFile(path, syntax)
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// CountRecords returns the total number of records across modules.
func CountRecords(modules []*Module) int {
	total := 0
	for _, module := range modules {
		total += len(module.Records)
	}
	return total
}
