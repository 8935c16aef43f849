package docblock

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extract splits file content into its header block and its docblock records.
// The result depends only on content and syntax.
func Extract(content string, syntax Syntax) ([]string, []Record) {
	lines := splitLines(content)

	header := extractHeader(lines, syntax)
	records := extractRecords(lines, syntax)
	SortRecords(records)

	return header, records
}

// splitLines normalizes line endings and splits content into lines.
// A trailing newline does not produce an empty final line.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// extractHeader collects lines up to the header-end marker.
// Without a marker, every line of the file belongs to the header.
func extractHeader(lines []string, syntax Syntax) []string {
	header := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, syntax.HeaderEnd) {
			break
		}
		header = append(header, dropRunes(line, syntax.HeaderPrefixWidth))
	}
	return header
}

// dropRunes removes the first n characters of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// extractRecords scans the whole file for docblocks, in file order.
func extractRecords(lines []string, syntax Syntax) []Record {
	var records []Record
	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), syntax.Open) {
			continue
		}

		record, end, closed := parseBlock(lines, i+1, syntax)
		if !closed {
			// Unterminated docblock: nothing more to collect.
			break
		}
		records = append(records, record)
		i = end
	}
	return records
}

// parseBlock reads docblock body lines starting at start. It returns the
// record, the index of the closing line, and whether a close was found.
func parseBlock(lines []string, start int, syntax Syntax) (Record, int, bool) {
	var (
		name        string
		description []string
		example     []string
		inExample   bool
	)

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, syntax.Close) {
			return Record{
				Name:        name,
				Description: strings.Join(description, " "),
				Example:     strings.Join(example, "\n"),
			}, i, true
		}

		switch {
		case strings.Contains(line, syntax.NameTag):
			_, after, _ := strings.Cut(line, syntax.NameTag)
			name = strings.TrimSpace(after)
		case strings.Contains(line, syntax.ExampleTag):
			inExample = true
		case inExample:
			if text := stripContinuation(line, syntax); text != "" {
				example = append(example, text)
			}
		default:
			text := stripContinuation(line, syntax)
			if text != "" && !isTag(text, syntax) {
				description = append(description, text)
			}
		}
	}

	return Record{}, len(lines), false
}

// stripContinuation removes a leading continuation marker and the whitespace
// after it. Lines without the marker are returned unchanged.
func stripContinuation(line string, syntax Syntax) string {
	if syntax.Continuation == "" || !strings.HasPrefix(line, syntax.Continuation) {
		return line
	}
	return strings.TrimLeftFunc(line[len(syntax.Continuation):], unicode.IsSpace)
}

func isTag(text string, syntax Syntax) bool {
	return syntax.TagPrefix != "" && strings.HasPrefix(text, syntax.TagPrefix)
}

// SortRecords orders records by lower-cased name. Equal names keep their
// relative order, and an empty name sorts first.
func SortRecords(records []Record) {
	if len(records) < 2 {
		return
	}

	caser := cases.Lower(language.Und)
	type keyed struct {
		key    string
		record Record
	}
	items := make([]keyed, len(records))
	for i, record := range records {
		items[i] = keyed{key: caser.String(record.Name), record: record}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})

	for i, item := range items {
		records[i] = item.record
	}
}
