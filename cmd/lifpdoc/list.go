package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/lifpdoc/internal/docblock"
	"github.com/gorewood/lifpdoc/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documented modules and their record counts",
		Long: `List the modules lifpdoc would document, in render order.

Examples:
  lifpdoc list          # Table of modules
  lifpdoc list --json   # Machine-readable listing`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	printer, err := newPrinter(cmd)
	if err != nil {
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

	return printer.ModuleList(moduleRows(files, modules))
}

// moduleRows pairs each module with the file it came from.
func moduleRows(files []string, modules []*docblock.Module) []output.ModuleRow {
	rows := make([]output.ModuleRow, 0, len(modules))
	for i, module := range modules {
		rows = append(rows, output.ModuleRow{
			Name:        module.Name,
			Path:        files[i],
			Records:     len(module.Records),
			HeaderLines: len(module.Header),
		})
	}
	return rows
}
