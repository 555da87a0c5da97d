package internal

import (
	"context"
	"fmt"
	"time"
)

// CreateTestReport creates a report with the given number of generated sections
func CreateTestReport(topic string, sections int) *Report {
	report := NewReport(topic)
	for i := 0; i < sections; i++ {
		report.Sections = append(report.Sections, Section{
			Title:       fmt.Sprintf("Section %d", i+1),
			Content:     fmt.Sprintf("Content for section %d of %s.", i+1, topic),
			ImageURL:    "data:image/jpeg;base64,dGVzdA==",
			ImagePrompt: BuildImagePrompt(topic, fmt.Sprintf("Section %d", i+1)),
		})
	}
	return report
}

// CreateTestReportAt creates a report with a fixed id and creation time, so
// tests can control history ordering.
func CreateTestReportAt(topic string, id int64, sections int) *Report {
	report := CreateTestReport(topic, sections)
	report.ID = id
	report.CreatedAt = time.UnixMilli(id).UTC()
	return report
}

// StubBackend is a scripted Backend for tests. Unset functions answer with
// benign defaults so tests only script what they assert on.
type StubBackend struct {
	OutlineFn func(ctx context.Context, apiKey, topic string) ([]string, error)
	TextFn    func(ctx context.Context, apiKey, prompt string) (string, error)
	ImageFn   func(ctx context.Context, apiKey, prompt, aspect string) ([]byte, error)

	OutlineCalls int
	TextCalls    int
	ImageCalls   int
}

func (s *StubBackend) Outline(ctx context.Context, apiKey, topic string) ([]string, error) {
	s.OutlineCalls++
	if s.OutlineFn != nil {
		return s.OutlineFn(ctx, apiKey, topic)
	}
	return []string{"Introduction", "Details", "Conclusion"}, nil
}

func (s *StubBackend) Text(ctx context.Context, apiKey, prompt string) (string, error) {
	s.TextCalls++
	if s.TextFn != nil {
		return s.TextFn(ctx, apiKey, prompt)
	}
	return "Generated prose.", nil
}

func (s *StubBackend) Image(ctx context.Context, apiKey, prompt, aspect string) ([]byte, error) {
	s.ImageCalls++
	if s.ImageFn != nil {
		return s.ImageFn(ctx, apiKey, prompt, aspect)
	}
	return []byte{0xff, 0xd8, 0xff, 0xe0}, nil
}
