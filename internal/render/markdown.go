package render

import (
	"fmt"
	"strings"

	"github.com/gorewood/lifpdoc/internal/docblock"
)

// Markdown renders the web index: title, table of contents, then one section
// per module with its header block and records.
func Markdown(meta Meta, modules []*docblock.Module) string {
	var builder strings.Builder

	writeMarkdownTitle(&builder, meta, modules)
	for _, module := range modules {
		writeMarkdownModule(&builder, meta, module)
	}

	return builder.String()
}

// writeMarkdownTitle writes the title line and the table of contents.
func writeMarkdownTitle(builder *strings.Builder, meta Meta, modules []*docblock.Module) {
	fmt.Fprintf(builder, "%s - %s (%s)\n---\n", meta.Project, meta.Version, meta.SHA)
	builder.WriteString("### Table of Contents\n")
	for _, module := range modules {
		fmt.Fprintf(builder, "  * [%s](#%s)\n", module.Name, module.Name)
	}
	builder.WriteString("\n")
}

// writeMarkdownModule writes a module heading, its header lines and records.
func writeMarkdownModule(builder *strings.Builder, meta Meta, module *docblock.Module) {
	fmt.Fprintf(builder, "# %s\n\n", module.Name)
	for _, line := range module.Header {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	for _, record := range module.Records {
		writeMarkdownRecord(builder, meta, record)
	}
}

// writeMarkdownRecord writes one record. Empty fields still produce their
// regions, including an empty fenced block.
func writeMarkdownRecord(builder *strings.Builder, meta Meta, record docblock.Record) {
	fmt.Fprintf(builder, "### %s\n\n", record.Name)
	fmt.Fprintf(builder, "%s\n\n", record.Description)
	fmt.Fprintf(builder, "```%s\n%s\n```\n\n\n", meta.Language, record.Example)
}
