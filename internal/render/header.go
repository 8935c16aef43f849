package render

import (
	"fmt"
	"strings"

	"github.com/gorewood/lifpdoc/internal/docblock"
)

// Field widths of the generated doc_record_t table, in characters.
const (
	MaxNameLen        = 32
	MaxDescriptionLen = 128
	MaxExampleLen     = 128
)

const headerPreamble = `// Auto-generated documentation header
// Do not modify manually

typedef struct {
  const char *name;
  const char *description;
  const char *example;
} doc_record_t;

static const doc_record_t DOCS[] = {
`

// Header renders the C documentation table embedded in the REPL.
// DOCS_COUNT always equals the number of initializers written.
func Header(modules []*docblock.Module) string {
	var builder strings.Builder
	builder.WriteString(headerPreamble)

	count := 0
	for _, module := range modules {
		for _, record := range module.Records {
			fmt.Fprintf(&builder, "  {\"%s\", \"%s\", \"%s\"},\n",
				HeaderName(record.Name),
				HeaderDescription(record.Description),
				HeaderExample(record.Example))
			count++
		}
	}

	builder.WriteString("};\n")
	fmt.Fprintf(&builder, "static const unsigned int DOCS_COUNT = %d;\n", count)

	return builder.String()
}

// HeaderName escapes quotes and truncates to MaxNameLen.
func HeaderName(name string) string {
	return truncate(escapeQuotes(name), MaxNameLen)
}

// HeaderDescription escapes quotes, flattens newlines to spaces and
// truncates to MaxDescriptionLen.
func HeaderDescription(description string) string {
	flat := strings.ReplaceAll(escapeQuotes(description), "\n", " ")
	return truncate(flat, MaxDescriptionLen)
}

// HeaderExample escapes quotes, encodes newlines as \n and truncates to
// MaxExampleLen.
func HeaderExample(example string) string {
	encoded := strings.ReplaceAll(escapeQuotes(example), "\n", `\n`)
	return truncate(encoded, MaxExampleLen)
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// truncate keeps at most limit characters of s. When the cut lands inside an
// escape sequence, the orphaned backslash is dropped so the C literal stays
// terminated.
func truncate(s string, limit int) string {
	seen := 0
	for i := range s {
		if seen == limit {
			return trimDanglingEscape(s[:i])
		}
		seen++
	}
	return s
}

// trimDanglingEscape removes a trailing backslash that escapes nothing.
func trimDanglingEscape(s string) string {
	run := len(s) - len(strings.TrimRight(s, `\`))
	if run%2 == 1 {
		return s[:len(s)-1]
	}
	return s
}
