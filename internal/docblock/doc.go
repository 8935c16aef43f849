// Package docblock extracts API documentation from annotated lifp source files.
//
// A source file carries two kinds of documentation:
//
//   - A header block: the comment lines at the top of the file, up to a line
//     containing the header-end marker. Each line has its comment prefix
//     stripped and is kept verbatim as module-level prose.
//   - Docblocks: /** ... */ comments, each describing one function or macro.
//
// A docblock looks like this:
//
//	/**
//	 * Adds two numbers.
//	 * @name add
//	 * @example
//	 * (add 1 2)
//	 */
//
// Lines before the @example tag form the description (joined with spaces);
// lines after it form the example (joined with newlines). Blank example lines
// are dropped, as are description lines starting with an unknown @tag.
//
// # Quirks
//
// An unterminated docblock at the end of a file is discarded without error.
// Only one name and one example section are recognized per docblock; a later
// @name overwrites an earlier one.
//
// The comment syntax is described by [Syntax]; [DefaultSyntax] matches the C
// sources of the lifp standard library.
package docblock
