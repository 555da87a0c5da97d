package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
)

// ProgressUpdate is one incremental pipeline snapshot. Report is a deep copy
// of the report so far (nil before the outline resolves); a consumer may keep
// it without racing the run.
type ProgressUpdate struct {
	Message string
	Report  *Report
}

// Advisory is the single non-fatal notice raised when one or more section
// images fell back to placeholders during an otherwise successful run.
type Advisory struct {
	Message  string
	Failures int
}

// Pipeline orchestrates a report run: outline, then one section at a time in
// outline order, then persistence into history. One run at a time; a second
// Run while one is in flight is rejected with ErrRunInFlight.
type Pipeline struct {
	generator *Generator
	history   *HistoryStore
	progress  func(ProgressUpdate)
	running   atomic.Bool
}

// NewPipeline creates a pipeline over a generator and a history store
func NewPipeline(generator *Generator, history *HistoryStore) *Pipeline {
	return &Pipeline{generator: generator, history: history}
}

// OnProgress registers a consumer for incremental snapshots. Must be set
// before Run; the pipeline calls it synchronously between sections.
func (p *Pipeline) OnProgress(fn func(ProgressUpdate)) {
	p.progress = fn
}

// Run generates a complete report for topic. On success the report has one
// section per outline entry in outline order, has been appended to history,
// and the returned advisory is non-nil iff at least one section image failed.
// Outline failure, an empty outline and content failure abort the run;
// nothing is persisted on abort.
func (p *Pipeline) Run(ctx context.Context, topic string, opts GenerationOptions) (*Report, *Advisory, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, nil, fmt.Errorf("topic is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	if !p.running.CompareAndSwap(false, true) {
		return nil, nil, ErrRunInFlight
	}
	defer p.running.Store(false)

	p.publish("Generating table of contents...", nil)

	outline, err := p.generator.GenerateOutline(ctx, topic)
	if err != nil {
		return nil, nil, err
	}
	if len(outline) == 0 {
		return nil, nil, ErrEmptyOutline
	}

	report := NewReport(topic)
	var imageErrors []string

	for i, title := range outline {
		p.publish(fmt.Sprintf("Generating section '%s'... (%d/%d)", title, i+1, len(outline)), report)

		section, imageErr, err := p.generator.AssembleSection(ctx, topic, title, opts)
		if err != nil {
			return nil, nil, err
		}

		report.Sections = append(report.Sections, section)
		if imageErr != "" {
			LogWarn("Image generation failed for section %q: %s", title, imageErr)
			imageErrors = append(imageErrors, imageErr)
		}

		p.publish(fmt.Sprintf("Section '%s' completed (%d/%d)", title, i+1, len(outline)), report)
	}

	if err := p.history.Save(report); err != nil {
		return nil, nil, fmt.Errorf("failed to save report to history: %w", err)
	}

	return report, buildAdvisory(imageErrors), nil
}

func (p *Pipeline) publish(message string, report *Report) {
	if p.progress == nil {
		return
	}
	p.progress(ProgressUpdate{Message: message, Report: report.Clone()})
}

// buildAdvisory turns the collected image errors into exactly one user-facing
// notice, worded from the first recorded error. Providers wrap failures in a
// JSON error envelope, so that is unwrapped before classification.
func buildAdvisory(imageErrors []string) *Advisory {
	if len(imageErrors) == 0 {
		return nil
	}

	display := imageErrors[0]
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if start := strings.Index(display, "{"); start >= 0 {
		if err := json.Unmarshal([]byte(display[start:]), &envelope); err == nil && envelope.Error.Message != "" {
			display = envelope.Error.Message
		}
	}

	lower := strings.ToLower(display)
	var message string
	switch {
	case strings.Contains(lower, "billing"):
		message = "Images could not be generated: make sure billing is enabled for your API key. Placeholders were used instead."
	case strings.Contains(lower, "api key not valid"):
		message = "Images could not be generated: your API key appears to be invalid. Please check the key settings."
	default:
		message = fmt.Sprintf("Images could not be generated. Error: %s. Placeholders were used instead.", display)
	}

	return &Advisory{Message: message, Failures: len(imageErrors)}
}
