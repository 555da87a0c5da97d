package internal

import (
	"fmt"
	"time"
)

// ReportLength selects how deep the generated section prose should go
type ReportLength string

const (
	LengthShort  ReportLength = "short"
	LengthNormal ReportLength = "normal"
	LengthLong   ReportLength = "long"
)

// OutputFormat selects the export encoder
type OutputFormat string

const (
	FormatPDF      OutputFormat = "pdf"
	FormatWord     OutputFormat = "word"
	FormatMarkdown OutputFormat = "md"
)

// GenerationOptions configures one report run. Immutable while the run is in flight.
type GenerationOptions struct {
	IncludeContributors bool         `json:"includeContributors" yaml:"include_contributors"`
	Length              ReportLength `json:"length" yaml:"length"`
	OutputFormat        OutputFormat `json:"outputFormat" yaml:"output_format"`
}

// DefaultGenerationOptions returns the options used when nothing is configured
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		IncludeContributors: false,
		Length:              LengthNormal,
		OutputFormat:        FormatPDF,
	}
}

// Validate checks that the options carry known enum values
func (o GenerationOptions) Validate() error {
	switch o.Length {
	case LengthShort, LengthNormal, LengthLong:
	default:
		return fmt.Errorf("invalid report length: %q (supported: short, normal, long)", o.Length)
	}
	switch o.OutputFormat {
	case FormatPDF, FormatWord, FormatMarkdown:
	default:
		return fmt.Errorf("invalid output format: %q (supported: pdf, word, md)", o.OutputFormat)
	}
	return nil
}

// Section is one generated report section. IsPlaceholder is true exactly when
// ImageURL carries a locally synthesized placeholder instead of a backend image.
// ImagePrompt is set whenever an image generation attempt occurred, so the
// prompt stays retrievable for manual regeneration.
type Section struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	ImageURL      string `json:"imageUrl"`
	ImagePrompt   string `json:"imagePrompt,omitempty"`
	IsPlaceholder bool   `json:"isPlaceholder,omitempty"`
}

// Report is a generated report. Sections are owned exclusively by their report
// and are never shared between reports or between history and a live run.
type Report struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Topic     string    `json:"topic"`
	Sections  []Section `json:"sections"`
}

// NewReport creates an empty report for a topic. The ID is the creation time
// in Unix milliseconds, which doubles as the history key.
func NewReport(topic string) *Report {
	now := time.Now().UTC()
	return &Report{
		ID:        now.UnixMilli(),
		CreatedAt: now,
		Topic:     topic,
		Sections:  []Section{},
	}
}

// Clone returns a deep copy, preserving exclusive ownership of the sections
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Sections = make([]Section, len(r.Sections))
	copy(cp.Sections, r.Sections)
	return &cp
}

// SetSectionContent replaces one section's text, the only user edit a report supports
func (r *Report) SetSectionContent(index int, content string) error {
	if index < 0 || index >= len(r.Sections) {
		return fmt.Errorf("section index %d out of range (report has %d sections)", index, len(r.Sections))
	}
	r.Sections[index].Content = content
	return nil
}

// PlaceholderCount reports how many sections carry a placeholder image
func (r *Report) PlaceholderCount() int {
	count := 0
	for _, s := range r.Sections {
		if s.IsPlaceholder {
			count++
		}
	}
	return count
}
