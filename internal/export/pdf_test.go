package export

import (
	"bytes"
	"testing"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

func TestPDFExport(t *testing.T) {
	report := internal.CreateTestReportAt("Wind Power", 1000, 2)
	// Placeholder sections exercise the drawn panel path without decoding
	for i := range report.Sections {
		report.Sections[i].IsPlaceholder = true
		report.Sections[i].ImageURL = internal.PlaceholderImage(report.Sections[i].Title, report.Sections[i].ImagePrompt)
	}

	var buf bytes.Buffer
	if err := (&PDFExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	// Title page plus one page per section
	if len(out) < 1000 {
		t.Errorf("output is %d bytes, implausibly small for 3 pages", len(out))
	}
}

func TestPDFExportEmptyImageURL(t *testing.T) {
	report := internal.CreateTestReportAt("Wind Power", 1000, 1)
	report.Sections[0].ImageURL = ""
	report.Sections[0].ImagePrompt = ""

	var buf bytes.Buffer
	if err := (&PDFExporter{}).Export(report, &buf); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Export() produced no output")
	}
}
