package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

func TestWriteReportFile(t *testing.T) {
	report := internal.CreateTestReportAt("Ocean Currents", 1000, 2)

	tests := []struct {
		name     string
		format   internal.OutputFormat
		wantName string
		wantErr  bool
	}{
		{name: "markdown", format: internal.FormatMarkdown, wantName: "Ocean_Currents.md"},
		{name: "word", format: internal.FormatWord, wantName: "Ocean_Currents.doc"},
		{name: "unsupported format", format: "epub", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := t.TempDir()
			path, err := writeReportFile(report, tt.format, outDir)
			if (err != nil) != tt.wantErr {
				t.Errorf("writeReportFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if filepath.Base(path) != tt.wantName {
				t.Errorf("writeReportFile() wrote %q, want file name %q", path, tt.wantName)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read exported file: %v", err)
			}
			if len(data) == 0 {
				t.Error("exported file is empty")
			}
			if !strings.Contains(string(data), "Ocean Currents") {
				t.Error("exported file does not mention the report topic")
			}
		})
	}
}

func TestWriteReportFileCreatesDirectory(t *testing.T) {
	report := internal.CreateTestReportAt("Ocean Currents", 1000, 1)
	outDir := filepath.Join(t.TempDir(), "exports", "nested")

	path, err := writeReportFile(report, internal.FormatMarkdown, outDir)
	if err != nil {
		t.Fatalf("writeReportFile() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}
