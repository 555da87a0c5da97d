package export

import (
	"fmt"
	"io"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

// WordExporter emits a Word-openable document: the styled report markup
// wrapped in the Office HTML envelope that word processors import with
// styles, images and page setup intact.
type WordExporter struct{}

// Export writes the report as a word-processor document
func (e *WordExporter) Export(report *internal.Report, w io.Writer) error {
	header := `<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">
<head>
<meta charset="utf-8" />
<!--[if gte mso 9]><xml><w:WordDocument><w:View>Print</w:View><w:Zoom>100</w:Zoom></w:WordDocument></xml><![endif]-->
<style>@page { size: A4 portrait; margin: 1in; }</style>
</head>
<body>
`
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("failed to write document header: %w", err)
	}
	if _, err := io.WriteString(w, BuildWordMarkup(report)); err != nil {
		return fmt.Errorf("failed to write document body: %w", err)
	}
	if _, err := io.WriteString(w, "</body>\n</html>\n"); err != nil {
		return fmt.Errorf("failed to write document footer: %w", err)
	}
	return nil
}

// Extension returns the file extension for this format
func (e *WordExporter) Extension() string {
	return "doc"
}
