package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gorewood/lifpdoc/internal/docblock"
)

// manSection is the manual section the page is filed under.
const manSection = 1

const manIntroduction = `
%[1]s is practical functional programming language belonging to the LISP family.
It features a REPL, file execution, a standard library, and modern conveniences.

Here's your first program:

  (io:stdout! "Hello world!") ; prints "Hello World"

This manual documents its standard library functions and usage examples.

`

// Manpage renders a troff manual page.
func Manpage(meta Meta, modules []*docblock.Module) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, ".TH %s %d \"%s\" \"%s\" \"%s manual\"\n",
		meta.Project, manSection, meta.Version, meta.SHA, meta.Project)
	builder.WriteString(".SH INTRODUCTION\n")
	fmt.Fprintf(&builder, manIntroduction, meta.Project)

	upper := cases.Upper(language.Und)
	for _, module := range modules {
		fmt.Fprintf(&builder, ".SH %s\n", upper.String(module.Name))
		builder.WriteString(".SH\n")
		for _, record := range module.Records {
			writeManRecord(&builder, record)
		}
	}

	fmt.Fprintf(&builder, ".SH SEE ALSO\nFor more information, feedback, or bug reports %s\n", meta.URL)

	return builder.String()
}

// writeManRecord writes one record as a subsection. The no-fill example
// block is omitted when there is no example.
func writeManRecord(builder *strings.Builder, record docblock.Record) {
	fmt.Fprintf(builder, ".SS %s\n", record.Name)
	fmt.Fprintf(builder, "%s\n\n", record.Description)
	if record.Example == "" {
		return
	}
	builder.WriteString(".nf\n")
	fmt.Fprintf(builder, "%s\n", record.Example)
	builder.WriteString(".fi\n\n")
}
