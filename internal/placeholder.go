package internal

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	placeholderWidth  = 1280
	placeholderHeight = 720

	// characters per wrapped prompt line
	placeholderWrapLimit = 56
	placeholderMaxLines  = 6
)

// PlaceholderImage synthesizes a self-contained SVG data URI carrying the
// section title and a word-wrapped rendering of the attempted image prompt.
// Deterministic for a given title and prompt, with no network dependency, so
// the user can always see what was attempted.
func PlaceholderImage(sectionTitle, imagePrompt string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, placeholderWidth, placeholderHeight))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#374151"/>`, placeholderWidth, placeholderHeight))
	sb.WriteString(`<text x="50%" y="24%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="48" fill="#9ca3af">Image could not be generated</text>`)
	sb.WriteString(fmt.Sprintf(`<text x="50%%" y="36%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="32" fill="#d1d5db">%s</text>`, escapeXML(sectionTitle)))

	lines := WrapText(imagePrompt, placeholderWrapLimit)
	if len(lines) > placeholderMaxLines {
		lines = append(lines[:placeholderMaxLines-1], "…")
	}
	for i, line := range lines {
		y := 48 + i*6
		sb.WriteString(fmt.Sprintf(`<text x="50%%" y="%d%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="22" fill="#6b7280">%s</text>`, y, escapeXML(line)))
	}
	sb.WriteString(`</svg>`)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(sb.String()))
}

// IsPlaceholderURL reports whether a URL is a locally synthesized placeholder
func IsPlaceholderURL(url string) bool {
	return strings.HasPrefix(url, "data:image/svg+xml;base64,")
}

// WrapText word-wraps text into lines of at most limit characters. Words
// longer than the limit get their own line rather than being split.
func WrapText(text string, limit int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= limit {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
