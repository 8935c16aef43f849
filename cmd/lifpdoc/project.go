package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/lifpdoc/internal/config"
	"github.com/gorewood/lifpdoc/internal/docblock"
	"github.com/gorewood/lifpdoc/internal/envfile"
	"github.com/gorewood/lifpdoc/internal/output"
	"github.com/gorewood/lifpdoc/internal/source"
)

// loadConfig resolves configuration for the command: config file, then
// .env.local and .env under the root, then the process environment.
func loadConfig(cmd *cobra.Command, printer *output.Printer) (*config.Config, error) {
	root := lookupFlag(cmd, "root")
	if root == "" {
		root = "."
	}

	cfg, err := readConfig(root, lookupFlag(cmd, "config"))
	if err != nil {
		cfgErr := output.ConfigError(err)
		printer.Error(cfgErr)
		return nil, cfgErr
	}

	cfg.ApplyEnv(envLookup(root, printer))

	if err := cfg.Validate(); err != nil {
		cfgErr := output.ConfigError(err)
		printer.Error(cfgErr)
		return nil, cfgErr
	}
	return cfg, nil
}

// readConfig loads an explicit config file or discovers one under root.
func readConfig(root, path string) (*config.Config, error) {
	if path == "" {
		return config.Discover(root)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Root = root
	return cfg, nil
}

// envLookup chains the process environment with the root's env files.
// The real environment always wins; unreadable files only warn.
func envLookup(root string, printer *output.Printer) config.LookupFunc {
	lookups := []func(string) (string, bool){os.LookupEnv}
	for _, name := range []string{".env.local", ".env"} {
		vars, err := envfile.Read(filepath.Join(root, name))
		if err != nil {
			printer.Warn("%v", err)
			continue
		}
		lookups = append(lookups, vars.Lookup)
	}
	return envfile.Chain(lookups...)
}

// loadModules discovers the configured sources and extracts every module.
func loadModules(cfg *config.Config, printer *output.Printer) ([]string, []*docblock.Module, error) {
	extra := make([]string, 0, len(cfg.Sources.Extra))
	for _, path := range cfg.Sources.Extra {
		extra = append(extra, cfg.Path(path))
	}

	files, err := source.Discover(cfg.Path(cfg.Sources.Glob), extra)
	if err != nil {
		cfgErr := output.ConfigError(err)
		printer.Error(cfgErr)
		return nil, nil, cfgErr
	}

	modules, err := docblock.ParseFiles(files, cfg.Syntax)
	if err != nil {
		ioErr := output.IOError(err)
		printer.Error(ioErr)
		return nil, nil, ioErr
	}
	return files, modules, nil
}
