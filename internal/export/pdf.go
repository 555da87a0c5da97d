package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

const jpegDataURIPrefix = "data:image/jpeg;base64,"

// PDFExporter paginates the report into an A4 portrait PDF: a title page with
// the table of contents, then one section per page with its heading, image
// (or a drawn placeholder panel) and body text flowing across pages.
type PDFExporter struct{}

// Export writes the report as a PDF
func (e *PDFExporter) Export(report *internal.Report, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(report.Topic, true)
	pdf.SetMargins(18, 20, 18)
	pdf.SetAutoPageBreak(true, 20)

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 36

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(17, 24, 39)
	pdf.MultiCell(contentW, 10, tr(report.Topic), "", "C", false)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetTextColor(14, 165, 233)
	pdf.MultiCell(contentW, 6, "AI-generated detailed report", "", "C", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(8, 145, 178)
	pdf.CellFormat(contentW, 8, "Table of Contents", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(55, 65, 81)
	for i, section := range report.Sections {
		pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("%d. %s", i+1, section.Title)), "", 1, "L", false, 0, "")
	}

	for i, section := range report.Sections {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(17, 24, 39)
		pdf.MultiCell(contentW, 8, tr(section.Title), "", "L", false)
		pdf.Ln(2)

		e.drawImage(pdf, tr, section, i, contentW, pageW)

		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(55, 65, 81)
		pdf.MultiCell(contentW, 5.5, tr(section.Content), "", "J", false)
	}

	if pdf.Err() {
		return fmt.Errorf("pdf generation failed: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// drawImage places the section image below the heading: a backend JPEG is
// embedded directly, a placeholder is redrawn as its gray panel with the
// word-wrapped prompt so the PDF stays self-contained.
func (e *PDFExporter) drawImage(pdf *gofpdf.Fpdf, tr func(string) string, section internal.Section, index int, contentW, pageW float64) {
	imgW := contentW
	imgH := contentW * 9 / 16

	if !section.IsPlaceholder && strings.HasPrefix(section.ImageURL, jpegDataURIPrefix) {
		payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(section.ImageURL, jpegDataURIPrefix))
		if err == nil {
			name := fmt.Sprintf("section-%d", index)
			opts := gofpdf.ImageOptions{ImageType: "JPEG"}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(payload))
			pdf.ImageOptions(name, (pageW-imgW)/2, pdf.GetY(), imgW, imgH, true, opts, 0, "")
			pdf.Ln(4)
			return
		}
		internal.LogWarn("Failed to decode section image, drawing placeholder panel: %v", err)
	}

	y := pdf.GetY()
	pdf.SetFillColor(55, 65, 81)
	pdf.Rect(18, y, imgW, imgH, "F")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(156, 163, 175)
	pdf.SetXY(18, y+imgH/2-12)
	pdf.MultiCell(imgW, 6, "Image could not be generated", "", "C", false)

	if section.ImagePrompt != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(107, 114, 128)
		pdf.SetX(18)
		pdf.MultiCell(imgW, 4.5, tr(section.ImagePrompt), "", "C", false)
	}

	pdf.SetXY(18, y+imgH+4)
}

// Extension returns the file extension for this format
func (e *PDFExporter) Extension() string {
	return "pdf"
}
