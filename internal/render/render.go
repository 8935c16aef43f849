package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/lifpdoc/internal/output"
)

// Defaults for Meta fields.
const (
	DefaultProject  = "lifp"
	DefaultLanguage = "lisp"
	DefaultURL      = "https://github.com/shikaan/lifp"
	DefaultVersion  = "v0.0.0"
	DefaultSHA      = "dev"
)

// Meta carries the project-level values substituted into rendered documents.
type Meta struct {
	Project  string
	Version  string
	SHA      string
	Language string // fence tag for markdown examples
	URL      string
}

// DefaultMeta returns Meta populated with the lifp defaults.
func DefaultMeta() Meta {
	return Meta{
		Project:  DefaultProject,
		Version:  DefaultVersion,
		SHA:      DefaultSHA,
		Language: DefaultLanguage,
		URL:      DefaultURL,
	}
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output.IOError(fmt.Errorf("creating directory %s: %w", dir, err))
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return output.IOError(fmt.Errorf("writing %s: %w", path, err))
	}
	return nil
}
