package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/lifpdoc/internal/config"
	"github.com/gorewood/lifpdoc/internal/docblock"
	"github.com/gorewood/lifpdoc/internal/output"
	"github.com/gorewood/lifpdoc/internal/render"
)

// Mode selects the artifact set a run produces.
type Mode string

// Supported modes.
const (
	ModeWeb  Mode = "web"
	ModeMan  Mode = "man"
	ModeREPL Mode = "repl"
)

const (
	usageMessage       = "Usage: lifpdoc [web|man|repl]"
	unknownModeMessage = "Unknown mode. Use 'web', 'man', or 'repl'."
)

// parseMode reads the single mode argument, ignoring case.
func parseMode(args []string) (Mode, error) {
	if len(args) != 1 {
		return "", output.NewUsageError("", usageMessage)
	}
	switch mode := Mode(strings.ToLower(strings.TrimSpace(args[0]))); mode {
	case ModeWeb, ModeMan, ModeREPL:
		return mode, nil
	default:
		return "", output.NewUsageError(unknownModeMessage, usageMessage)
	}
}

// renderFunc produces one artifact from the extracted modules.
type renderFunc func(meta render.Meta, modules []*docblock.Module) (string, error)

// target is one output file of a mode.
type target struct {
	kind   string
	path   string
	render renderFunc
}

// infallible adapts a renderer that cannot fail.
func infallible(fn func(render.Meta, []*docblock.Module) string) renderFunc {
	return func(meta render.Meta, modules []*docblock.Module) (string, error) {
		return fn(meta, modules), nil
	}
}

// targetsFor lists the files written for a mode. Optional web outputs are
// only included when configured.
func targetsFor(mode Mode, cfg *config.Config) []target {
	switch mode {
	case ModeWeb:
		targets := []target{{kind: "markdown", path: cfg.Outputs.Markdown, render: infallible(render.Markdown)}}
		if cfg.Outputs.JSON != "" {
			targets = append(targets, target{kind: "json", path: cfg.Outputs.JSON, render: render.JSON})
		}
		if cfg.Outputs.HTML != "" {
			targets = append(targets, target{kind: "html", path: cfg.Outputs.HTML, render: render.HTML})
		}
		return targets
	case ModeMan:
		return []target{{kind: "manpage", path: cfg.Outputs.Manpage, render: infallible(render.Manpage)}}
	case ModeREPL:
		header := func(_ render.Meta, modules []*docblock.Module) string { return render.Header(modules) }
		return []target{{kind: "header", path: cfg.Outputs.Header, render: infallible(header)}}
	default:
		return nil
	}
}

// runGenerate dispatches the mode argument to its renderers.
func runGenerate(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	// The mode is checked before anything is read or written.
	mode, err := parseMode(args)
	if err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := loadConfig(cmd, printer)
	if err != nil {
		return err
	}

	files, modules, err := loadModules(cfg, printer)
	if err != nil {
		return err
	}

	report := output.RunReport{
		Mode:    string(mode),
		Version: cfg.Build.Version,
		SHA:     cfg.Build.SHA,
		Sources: files,
		Modules: len(modules),
		Records: docblock.CountRecords(modules),
	}

	meta := cfg.Meta()
	for _, t := range targetsFor(mode, cfg) {
		path := cfg.Path(t.path)
		if err := writeTarget(t, path, meta, modules); err != nil {
			printer.Error(err)
			return err
		}
		report.Files = append(report.Files, output.WrittenFile{Kind: t.kind, Path: path})
	}

	return printer.Report(report)
}

// writeTarget renders and writes a single artifact.
func writeTarget(t target, path string, meta render.Meta, modules []*docblock.Module) error {
	content, err := t.render(meta, modules)
	if err != nil {
		return output.IOError(fmt.Errorf("rendering %s: %w", t.kind, err))
	}
	return render.WriteFile(path, content)
}
