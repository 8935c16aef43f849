// Package render projects extracted lifp documentation into output formats.
//
// Every renderer is a pure function of a [Meta] and the extracted modules:
// identical input always yields identical output. Modules are rendered in the
// order given; records keep the order the extractor produced.
//
// # Formats
//
//   - [Markdown]: the web index, with a table of contents linking to each module
//   - [Manpage]: a troff manual page (section 1)
//   - [Header]: a C header holding a static doc_record_t table for the REPL
//   - [JSON]: a name-keyed JSON document of all named records
//   - [HTML]: the markdown index rendered to HTML
//
// # Empty fields
//
// Markdown always emits the fenced example block, even when the example is
// empty. The manual page omits the .nf/.fi block for records without an
// example.
//
// # Header limits
//
// Header fields are escaped and truncated to fixed widths:
//
//	name         32 characters
//	description 128 characters (newlines become spaces)
//	example     128 characters (newlines become \n)
//
// Truncation never leaves a dangling escape backslash at the end of a field.
//
// # Writing
//
// [WriteFile] creates parent directories and writes a rendered document in one
// call, returning an output system error on failure.
package render
