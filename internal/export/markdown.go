package export

import (
	"fmt"
	"io"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

// MarkdownExporter exports reports in Markdown format
type MarkdownExporter struct{}

// Export exports a report to Markdown format
func (e *MarkdownExporter) Export(report *internal.Report, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", report.Topic)
	_, _ = fmt.Fprintf(w, "*AI-generated detailed report, %s*\n\n", report.CreatedAt.Format("2006-01-02 15:04"))

	_, _ = fmt.Fprintf(w, "## Table of Contents\n\n")
	for i, section := range report.Sections {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, section.Title)
	}
	_, _ = fmt.Fprintf(w, "\n")

	for i, section := range report.Sections {
		_, _ = fmt.Fprintf(w, "## %s\n\n", section.Title)

		if section.IsPlaceholder {
			_, _ = fmt.Fprintf(w, "> Image could not be generated.")
			if section.ImagePrompt != "" {
				_, _ = fmt.Fprintf(w, " Prompt attempted: %s", section.ImagePrompt)
			}
			_, _ = fmt.Fprintf(w, "\n\n")
		} else if section.ImageURL != "" {
			_, _ = fmt.Fprintf(w, "![Illustration for %s](%s)\n\n", section.Title, section.ImageURL)
		}

		_, _ = fmt.Fprintf(w, "%s\n", section.Content)

		if i < len(report.Sections)-1 {
			_, _ = fmt.Fprintf(w, "\n---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
