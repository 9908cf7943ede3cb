// Package ui renders run headers and summaries for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/realbooks/internal/batch"
	"github.com/itsmostafa/realbooks/internal/compile"
	"github.com/itsmostafa/realbooks/internal/pdfdoc"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// headerBoxStyle for the run header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatHeader renders the run header with the configuration in use.
func FormatHeader(w io.Writer, mode, source string) {
	content := fmt.Sprintf("%s %s\n%s %s",
		dimStyle.Render("Mode:"), titleStyle.Render(mode),
		dimStyle.Render("Config:"), source,
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSummary renders the end of run summary box.
func FormatSummary(w io.Writer, report *batch.Report) {
	status := successStyle.Render("OK")
	if report.EntriesSkipped > 0 || report.SongsSkipped > 0 {
		status = warnStyle.Render("WITH ERRORS")
	}

	line1 := fmt.Sprintf("%s %d (%d skipped)  %s %d (%d skipped)",
		dimStyle.Render("Books:"), report.Entries, report.EntriesSkipped,
		dimStyle.Render("Songs:"), report.SongsWritten, report.SongsSkipped,
	)
	line2 := fmt.Sprintf("%s %.2fs  %s",
		dimStyle.Render("Runtime:"), report.Elapsed.Seconds(),
		status,
	)

	content := titleStyle.Render("Run Complete") + "\n" + line1 + "\n" + line2
	if len(report.Directories) > 0 {
		content += "\n" + dimStyle.Render("Output:") + " " + strings.Join(report.Directories, ", ")
	}
	fmt.Fprintln(w, boxStyle.Render(content))

	if len(report.Compiled) > 0 {
		FormatCompiled(w, report.Compiled)
	}
}

// FormatCompiled renders one line per compiled directory.
func FormatCompiled(w io.Writer, results []*compile.Result) {
	for _, r := range results {
		if !r.Written {
			fmt.Fprintf(w, "%s %s %s\n", warnStyle.Render("-"), r.Directory, dimStyle.Render("(no PDF files)"))
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n",
			successStyle.Render("✓"), r.Output,
			dimStyle.Render(fmt.Sprintf("(%d songs, %d pages)", len(r.Entries), r.Pages)),
		)
	}
}

// FormatCheck renders the dry-run report of a configuration.
func FormatCheck(w io.Writer, report *batch.CheckReport) {
	for _, entry := range report.Entries {
		header := fmt.Sprintf("#%d %s", entry.Index, entry.File)
		if entry.PageCount > 0 {
			header += dimStyle.Render(fmt.Sprintf(" (%d pages → %s)", entry.PageCount, entry.OutputDirectory))
		}
		fmt.Fprintln(w, titleStyle.Render(header))

		for _, s := range entry.Songs {
			fmt.Fprintf(w, "  %s %s %s\n", dimStyle.Render("•"), s.Filename(entry.Abbreviation), dimStyle.Render(formatPages(s.Pages())))
		}
		for _, problem := range entry.Problems {
			fmt.Fprintf(w, "  %s %v\n", errorStyle.Render("✗"), problem)
		}
	}

	if report.Problems == 0 {
		fmt.Fprintln(w, successStyle.Render("No problems found"))
		return
	}
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d problem(s) found", report.Problems)))
}

// FormatOutline renders the outline of a compiled book, pages numbered from 1.
func FormatOutline(w io.Writer, entries []pdfdoc.OutlineEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render(fmt.Sprintf("%5d", e.PageIndex+1)), e.Title)
	}
}

// formatPages renders a page list compactly, collapsing ascending runs: 3-5 5 9
func formatPages(pages []int) string {
	var parts []string
	for i := 0; i < len(pages); {
		j := i
		for j+1 < len(pages) && pages[j+1] == pages[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, fmt.Sprintf("%d-%d", pages[i], pages[j]))
		} else {
			parts = append(parts, fmt.Sprintf("%d", pages[i]))
		}
		i = j + 1
	}
	return "p. " + strings.Join(parts, " ")
}
