package export

import (
	"strings"
	"testing"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

func TestBuildWordMarkup(t *testing.T) {
	report := internal.CreateTestReportAt("Solar Energy", 1000, 2)
	report.Sections[0].Content = "First paragraph.\nSecond paragraph."

	markup := BuildWordMarkup(report)

	if !strings.Contains(markup, ">Solar Energy</h1>") {
		t.Error("markup missing the report title heading")
	}
	if !strings.Contains(markup, "AI-generated detailed report") {
		t.Error("markup missing the subtitle")
	}
	if !strings.Contains(markup, "Table of Contents") {
		t.Error("markup missing the table of contents")
	}

	// Every section appears twice: once in the TOC, once as a heading
	for _, section := range report.Sections {
		if got := strings.Count(markup, ">"+section.Title+"<"); got != 2 {
			t.Errorf("section %q appears %d times, want 2 (TOC and heading)", section.Title, got)
		}
	}

	// Newlines in prose become line breaks
	if !strings.Contains(markup, "First paragraph.<br />Second paragraph.") {
		t.Error("markup did not convert newlines to <br />")
	}

	// Images are embedded with their data URIs
	if !strings.Contains(markup, `src="`+report.Sections[0].ImageURL+`"`) {
		t.Error("markup missing the section image")
	}
}

func TestBuildWordMarkupEscapesContent(t *testing.T) {
	report := internal.CreateTestReportAt("Math < Physics & Chemistry", 1000, 1)
	report.Sections[0].Title = `A "quoted" <title>`
	report.Sections[0].Content = "1 < 2 && 3 > 2"

	markup := BuildWordMarkup(report)

	if strings.Contains(markup, "<title>") {
		t.Error("markup contains unescaped section title markup")
	}
	if !strings.Contains(markup, "Math &lt; Physics &amp; Chemistry") {
		t.Error("markup missing the escaped topic")
	}
	if !strings.Contains(markup, "1 &lt; 2 &amp;&amp; 3 &gt; 2") {
		t.Error("markup missing the escaped prose")
	}
}
