package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes lifpdoc results, either styled for a terminal or as JSON.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	styles styles
}

type styles struct {
	err     lipgloss.Style
	warn    lipgloss.Style
	wrote   lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
}

// NewPrinter creates a Printer for w. colorMode is one of the Color*
// constants; auto colors only when w is a terminal.
func NewPrinter(w io.Writer, jsonMode bool, colorMode string) *Printer {
	plain := lipgloss.NewStyle()
	p := &Printer{
		w:      w,
		errW:   w,
		json:   jsonMode,
		styles: styles{err: plain, warn: plain, wrote: plain, heading: plain, dim: plain},
	}
	if ResolveColorMode(colorMode, IsTTY(w)) {
		p.styles = styles{
			err:     plain.Foreground(lipgloss.Color("9")).Bold(true),
			warn:    plain.Foreground(lipgloss.Color("11")),
			wrote:   plain.Foreground(lipgloss.Color("10")),
			heading: plain.Bold(true),
			dim:     plain.Foreground(lipgloss.Color("8")),
		}
	}
	return p
}

// WithStderr sets the writer for human-mode errors and warnings.
// JSON errors always go to the main writer so they stay machine-readable.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the printer emits JSON.
func (p *Printer) IsJSON() bool {
	return p.json
}

// errorPayload is the JSON form of a failed run.
type errorPayload struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
	Usage string `json:"usage,omitempty"`
}

// Error reports a failed run. A bare usage error prints only the usage line.
func (p *Printer) Error(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(0, p.writeJSON(errorPayload{
			Error: exitErr.Error(),
			Code:  exitErr.Code,
			Usage: exitErr.Usage,
		}))
		return
	}

	if exitErr.Message != "" {
		mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.err.Render("Error"), exitErr.Message))
	}
	if exitErr.Usage != "" {
		mustWrite(fmt.Fprintln(p.errW, exitErr.Usage))
	}
}

// Warn reports a problem that did not stop the run.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		mustWrite(0, p.writeJSON(map[string]string{"warning": msg}))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.warn.Render("Warning"), msg))
}

// WriteJSON encodes data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// mustWrite panics if a write to stdout, stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
