package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/lifpdoc/internal/docblock"
	"github.com/gorewood/lifpdoc/internal/render"
)

// Config file names.
const (
	ProjectFileName = ".lifpdoc.yaml"
	GlobalFileName  = "lifpdoc.yaml"
)

// Environment variables holding build metadata.
const (
	EnvVersion = "VERSION"
	EnvSHA     = "SHA"
)

// Config is the resolved lifpdoc configuration.
type Config struct {
	// Root is the directory relative paths are resolved against.
	Root string `yaml:"-"`
	// Source is the config file this was loaded from, empty for defaults.
	Source string `yaml:"-"`

	Project Project         `yaml:"project"`
	Sources Sources         `yaml:"sources"`
	Outputs Outputs         `yaml:"outputs"`
	Syntax  docblock.Syntax `yaml:"syntax"`
	Build   Build           `yaml:"-"`
}

// Project describes the documented language.
type Project struct {
	Name     string `yaml:"name"     validate:"required"`
	Language string `yaml:"language" validate:"required"`
	URL      string `yaml:"url"      validate:"required,url"`
}

// Sources locates the annotated source files.
type Sources struct {
	Glob  string   `yaml:"glob"  validate:"required"`
	Extra []string `yaml:"extra" validate:"dive,required"`
}

// Outputs holds the artifact paths. JSON and HTML are only written when set.
type Outputs struct {
	Markdown string `yaml:"markdown" validate:"required"`
	Manpage  string `yaml:"manpage"  validate:"required"`
	Header   string `yaml:"header"   validate:"required"`
	JSON     string `yaml:"json"`
	HTML     string `yaml:"html"`
}

// Build is the version information substituted into rendered titles.
type Build struct {
	Version string `validate:"required"`
	SHA     string `validate:"required"`
}

// Default returns the configuration for the lifp repository layout.
func Default() *Config {
	return &Config{
		Root: ".",
		Project: Project{
			Name:     render.DefaultProject,
			Language: render.DefaultLanguage,
			URL:      render.DefaultURL,
		},
		Sources: Sources{
			Glob:  "lifp/std/*.c",
			Extra: []string{"lifp/specials.c"},
		},
		Outputs: Outputs{
			Markdown: "docs/index.md",
			Manpage:  "artifacts/lifp.1",
			Header:   "artifacts/docs.h",
		},
		Syntax: docblock.DefaultSyntax(),
		Build: Build{
			Version: render.DefaultVersion,
			SHA:     render.DefaultSHA,
		},
	}
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Discover finds the config for root: root/.lifpdoc.yaml first, then the
// global lifpdoc.yaml. With neither present the defaults are returned.
func Discover(root string) (*Config, error) {
	candidates := []string{filepath.Join(root, ProjectFileName)}
	if dir := Dir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, GlobalFileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("checking config %s: %w", path, err)
		}
		cfg, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg.Root = root
		return cfg, nil
	}

	cfg := Default()
	cfg.Root = root
	return cfg, nil
}

// decode reads YAML into cfg, rejecting unknown keys. An empty document
// leaves cfg unchanged.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LookupFunc reports the value of an environment-style variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv sets build metadata from VERSION and SHA. Unset and empty
// variables keep the current values.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if v, ok := lookup(EnvVersion); ok && v != "" {
		c.Build.Version = v
	}
	if v, ok := lookup(EnvSHA); ok && v != "" {
		c.Build.SHA = v
	}
}

// Meta returns the values substituted into rendered documents.
func (c *Config) Meta() render.Meta {
	return render.Meta{
		Project:  c.Project.Name,
		Version:  c.Build.Version,
		SHA:      c.Build.SHA,
		Language: c.Project.Language,
		URL:      c.Project.URL,
	}
}

// Path resolves p against the config root. Absolute paths are unchanged.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// Validate checks required fields and value formats.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

// describeFieldError turns a validator error into a short message naming the
// offending field by its namespace.
func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return fmt.Sprintf("%s must be a URL (got %q)", field, fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
