package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

// Exporter defines the interface for all export encoders. An exporter
// receives a fully assembled report and never mutates it.
type Exporter interface {
	Export(report *internal.Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format internal.OutputFormat) (Exporter, error) {
	switch format {
	case internal.FormatPDF:
		return &PDFExporter{}, nil
	case internal.FormatWord:
		return &WordExporter{}, nil
	case internal.FormatMarkdown:
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: pdf, word, md)", format)
	}
}

// FileName derives the output file name from the report topic, with
// whitespace collapsed to underscores.
func FileName(report *internal.Report, e Exporter) string {
	base := strings.Join(strings.Fields(report.Topic), "_")
	if base == "" {
		base = fmt.Sprintf("report_%d", report.ID)
	}
	return base + "." + e.Extension()
}
