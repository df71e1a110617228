package i18n

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var rule = strings.Repeat("=", 60)

type reportStyles struct {
	title   lipgloss.Style
	file    lipgloss.Style
	missing lipgloss.Style
	extra   lipgloss.Style
	ok      lipgloss.Style
	errLine lipgloss.Style
}

// newReportStyles binds the palette to w so that plain writers (pipes,
// buffers) get uncolored text.
func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		title:   r.NewStyle().Bold(true),
		file:    r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		missing: r.NewStyle().Foreground(lipgloss.Color("196")),
		extra:   r.NewStyle().Foreground(lipgloss.Color("214")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("42")),
		errLine: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// RenderReport writes the human-readable report for a checker run.
func RenderReport(w io.Writer, report *Report) {
	s := newReportStyles(w)

	fmt.Fprintf(w, "Loading reference file: %s\n", report.Reference)
	if report.ReferenceError != nil {
		fmt.Fprintln(w, s.errLine.Render(fmt.Sprintf("  ERROR: %s: %v", report.Reference, report.ReferenceError)))
	}
	fmt.Fprintf(w, "  Found %d keys in %s\n\n", report.ReferenceKeys, report.Reference)

	if len(report.Files) == 0 {
		fmt.Fprintln(w, "No language files found.")
		return
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, s.title.Render("MISSING TRANSLATIONS REPORT"))
	fmt.Fprintln(w, rule)

	for _, f := range report.Files {
		if f.ParseError != nil {
			fmt.Fprintln(w, s.errLine.Render(fmt.Sprintf("  ERROR: %s: %v", f.File, f.ParseError)))
		}

		if !f.HasIssues() {
			fmt.Fprintf(w, "\n%s: %s\n", s.file.Render(f.File), s.ok.Render(fmt.Sprintf("✓ Complete (%d keys)", f.KeyCount)))
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", s.file.Render(f.File))
		if len(f.Missing) > 0 {
			fmt.Fprintf(w, "  Missing (%d keys):\n", len(f.Missing))
			for _, key := range f.Missing {
				fmt.Fprintln(w, s.missing.Render("    - "+key))
			}
		}
		if len(f.Extra) > 0 {
			fmt.Fprintf(w, "  Extra (%d keys not in %s):\n", len(f.Extra), report.Reference)
			for _, key := range f.Extra {
				fmt.Fprintln(w, s.extra.Render("    + "+key))
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, s.title.Render("SUMMARY"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total language files checked: %d\n", len(report.Files))
	fmt.Fprintf(w, "Files with issues: %d\n", report.FilesWithIssues())
	fmt.Fprintf(w, "Total missing keys: %d\n", report.TotalMissing())
	fmt.Fprintf(w, "Total extra keys: %d\n", report.TotalExtra())

	if !report.Failed() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.ok.Render("✓ All translations are complete!"))
	}
}
