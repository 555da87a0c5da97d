package export

import (
	"testing"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name    string
		format  internal.OutputFormat
		wantExt string
		wantErr bool
	}{
		{name: "pdf", format: internal.FormatPDF, wantExt: "pdf"},
		{name: "word", format: internal.FormatWord, wantExt: "doc"},
		{name: "markdown", format: internal.FormatMarkdown, wantExt: "md"},
		{name: "unknown", format: "epub", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewExporter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && exporter.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", exporter.Extension(), tt.wantExt)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	exporter := &MarkdownExporter{}

	tests := []struct {
		name  string
		topic string
		want  string
	}{
		{name: "spaces become underscores", topic: "Quantum  Computing Basics", want: "Quantum_Computing_Basics.md"},
		{name: "single word", topic: "Bees", want: "Bees.md"},
		{name: "blank topic falls back to the id", topic: "   ", want: "report_1234.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := internal.CreateTestReportAt(tt.topic, 1234, 1)
			if got := FileName(report, exporter); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
