package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WrittenFile is one artifact written by a run.
type WrittenFile struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// RunReport summarizes a documentation run.
type RunReport struct {
	Mode    string        `json:"mode"`
	Version string        `json:"version"`
	SHA     string        `json:"sha"`
	Sources []string      `json:"sources"`
	Modules int           `json:"modules"`
	Records int           `json:"records"`
	Files   []WrittenFile `json:"files"`
}

// Report prints one line per written artifact and a closing total.
func (p *Printer) Report(r RunReport) error {
	if p.json {
		return p.writeJSON(r)
	}
	for _, f := range r.Files {
		mustWrite(fmt.Fprintf(p.w, "%s %s %s\n",
			p.styles.wrote.Render("Wrote"), f.Path, p.styles.dim.Render("("+f.Kind+")")))
	}
	mustWrite(fmt.Fprintf(p.w, "%d records from %d modules (%s, %s)\n",
		r.Records, r.Modules, r.Version, r.SHA))
	return nil
}

// ModuleRow is one documented module in a listing.
type ModuleRow struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Records     int    `json:"records"`
	HeaderLines int    `json:"header_lines"`
}

// ModuleList prints modules in render order as an aligned table followed by
// the record total, or as a JSON array.
func (p *Printer) ModuleList(rows []ModuleRow) error {
	if p.json {
		if rows == nil {
			rows = []ModuleRow{}
		}
		return p.writeJSON(rows)
	}

	cells := [][]string{{"MODULE", "RECORDS", "SOURCE"}}
	total := 0
	for _, row := range rows {
		cells = append(cells, []string{row.Name, strconv.Itoa(row.Records), row.Path})
		total += row.Records
	}

	widths := columnWidths(cells)
	for i, line := range cells {
		style := lipgloss.NewStyle()
		if i == 0 {
			style = p.styles.heading
		}
		mustWrite(fmt.Fprintln(p.w, formatRow(line, widths, style)))
	}
	mustWrite(fmt.Fprintf(p.w, "\n%d records in %d modules\n", total, len(rows)))
	return nil
}

// columnWidths returns the display width of the widest cell per column.
func columnWidths(cells [][]string) []int {
	widths := make([]int, len(cells[0]))
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	return widths
}

// formatRow pads every cell but the last to its column width.
func formatRow(line []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(line))
	for i, cell := range line {
		if i < len(line)-1 {
			cell += strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		parts[i] = style.Render(cell)
	}
	return strings.Join(parts, "  ")
}
