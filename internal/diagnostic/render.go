package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/fatih/color"
)

// PrettyOpts controls human-readable output.
type PrettyOpts struct {
	Color bool
	// Infos includes info diagnostics, which are hidden by default.
	Infos bool
	// Max caps the number of printed diagnostics; zero means no limit.
	Max int
}

// Pretty writes diagnostics one per line:
//
//	<file>:<line>:<col>: <severity>[<code>]: <message>
//
// followed by indented suggestions.
func Pretty(w io.Writer, d *Diagnostics, opts PrettyOpts) error {
	severityColors := map[DiagnosticSeverity]*color.Color{
		DiagnosticError:   color.New(color.FgRed, color.Bold),
		DiagnosticWarning: color.New(color.FgYellow, color.Bold),
		DiagnosticInfo:    color.New(color.FgCyan),
	}
	posColor := color.New(color.Bold)
	hintColor := color.New(color.FgGreen)

	all := []*color.Color{posColor, hintColor}
	for _, c := range severityColors {
		all = append(all, c)
	}

	for _, c := range all {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	printed := 0
	for _, diag := range d.All() {
		if diag.Severity == DiagnosticInfo && !opts.Infos {
			continue
		}

		if opts.Max > 0 && printed == opts.Max {
			_, err := fmt.Fprintf(w, "... further diagnostics omitted (limit %d)\n", opts.Max)
			return err
		}

		pos := "-"
		if diag.Position.IsValid() {
			pos = diag.Position.String()
		}

		_, err := fmt.Fprintf(w, "%s: %s: %s\n",
			posColor.Sprint(pos),
			severityColors[diag.Severity].Sprintf("%s[%s]", diag.Severity, diag.Code),
			diag.Message,
		)
		if err != nil {
			return err
		}

		for _, s := range diag.Suggestions {
			if _, err := fmt.Fprintf(w, "\t%s %s\n", hintColor.Sprint("hint:"), s); err != nil {
				return err
			}
		}

		printed++
	}

	return nil
}

// JSONReport is the machine-readable form of a check run.
type JSONReport struct {
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
}

// JSONDiagnostic is a single diagnostic in a JSONReport.
type JSONDiagnostic struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	File        string   `json:"file,omitempty"`
	Line        uint32   `json:"line,omitempty"`
	Column      uint32   `json:"column,omitempty"`
	Func        string   `json:"func,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// NewJSONReport converts diagnostics into a JSONReport.
func NewJSONReport(d *Diagnostics) (*JSONReport, error) {
	report := &JSONReport{
		Errors:      len(d.Errors),
		Warnings:    len(d.Warnings),
		Diagnostics: []JSONDiagnostic{},
	}

	for _, diag := range d.All() {
		line, err := safecast.Conv[uint32](diag.Position.Line)
		if err != nil {
			return nil, fmt.Errorf("line of %s: %w", diag.Code, err)
		}

		column, err := safecast.Conv[uint32](diag.Position.Column)
		if err != nil {
			return nil, fmt.Errorf("column of %s: %w", diag.Code, err)
		}

		report.Diagnostics = append(report.Diagnostics, JSONDiagnostic{
			Severity:    diag.Severity.String(),
			Code:        diag.Code,
			Message:     diag.Message,
			File:        diag.Position.Filename,
			Line:        line,
			Column:      column,
			Func:        diag.Func,
			Suggestions: diag.Suggestions,
		})
	}

	return report, nil
}

// WriteJSON writes diagnostics as an indented JSONReport.
func WriteJSON(w io.Writer, d *Diagnostics) error {
	report, err := NewJSONReport(d)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}
