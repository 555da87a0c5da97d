package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

// Inline styles for the word-processor markup. Word-processor importers only
// honor inline styles, so everything is carried per element.
var wordStyles = map[string]string{
	"h1":     `font-size: 28px; font-family: Calibri, sans-serif; font-weight: bold; text-align: center; color: #111827; margin-bottom: 8px;`,
	"h1_p":   `font-size: 14px; font-family: Calibri, sans-serif; text-align: center; color: #0ea5e9; margin-top: 0;`,
	"h2":     `font-size: 22px; font-family: Calibri, sans-serif; font-weight: bold; color: #111827; margin-top: 28px; margin-bottom: 14px; border-bottom: 2px solid #0ea5e9; padding-bottom: 4px;`,
	"img":    `max-width: 550px; height: auto; display: block; margin: 16px auto;`,
	"p":      `font-size: 12pt; font-family: Calibri, sans-serif; line-height: 1.5; color: #374151;`,
	"toc_h2": `font-size: 20px; font-family: Calibri, sans-serif; font-weight: bold; color: #0891b2; margin-bottom: 16px;`,
	"toc_ul": `list-style-type: decimal; padding-left: 20px;`,
	"toc_li": `font-size: 12pt; font-family: Calibri, sans-serif; color: #374151; margin-bottom: 8px;`,
}

// BuildWordMarkup builds the styled markup string the word-processor encoder
// serializes: report title, subtitle, a numbered table of contents from the
// section titles, then each section's heading, image and paragraphs.
func BuildWordMarkup(report *internal.Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<h1 style="%s">%s</h1>`+"\n", wordStyles["h1"], html.EscapeString(report.Topic)))
	sb.WriteString(fmt.Sprintf(`<p style="%s">AI-generated detailed report</p>`+"\n", wordStyles["h1_p"]))

	sb.WriteString(`<div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin-top: 32px; margin-bottom: 32px;">` + "\n")
	sb.WriteString(fmt.Sprintf(`<h2 style="%s">Table of Contents</h2>`+"\n", wordStyles["toc_h2"]))
	sb.WriteString(fmt.Sprintf(`<ul style="%s">`+"\n", wordStyles["toc_ul"]))
	for _, section := range report.Sections {
		sb.WriteString(fmt.Sprintf(`<li style="%s">%s</li>`+"\n", wordStyles["toc_li"], html.EscapeString(section.Title)))
	}
	sb.WriteString("</ul>\n</div>\n")

	for _, section := range report.Sections {
		sb.WriteString("<div>\n")
		sb.WriteString(fmt.Sprintf(`<h2 style="%s">%s</h2>`+"\n", wordStyles["h2"], html.EscapeString(section.Title)))
		sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" style="%s" />`+"\n",
			section.ImageURL, html.EscapeString("Illustration for "+section.Title), wordStyles["img"]))
		content := strings.ReplaceAll(html.EscapeString(section.Content), "\n", "<br />")
		sb.WriteString(fmt.Sprintf(`<p style="%s">%s</p>`+"\n", wordStyles["p"], content))
		sb.WriteString("</div>\n")
	}

	return sb.String()
}
