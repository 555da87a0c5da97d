package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
	"github.com/Emrevrg/ai-rapor-olu-turucu/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <report-id>",
	Short: "Export a report from history to a file",
	Long: `Export a previously generated report to a file.

The output file is named from the report topic. Supported formats: pdf
(page-image PDF), word (Word-compatible document) and md (Markdown).
Use 'raporgen list' to see available report IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid report id %q (use 'raporgen list' to see report IDs)", args[0])
		}

		_, store, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		history := internal.NewHistoryStore(store)
		report, err := history.LoadByID(id)
		if err != nil {
			return fmt.Errorf("failed to load report %d: %w", id, err)
		}

		path, err := writeReportFile(report, internal.OutputFormat(exportFormat), exportOut)
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Report %d exported to %s", id, path))
		return nil
	},
}

// writeReportFile encodes a report with the format's exporter into outDir.
// Failures are wrapped as ExportError; the report and history are untouched.
func writeReportFile(report *internal.Report, format internal.OutputFormat, outDir string) (string, error) {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", &internal.ExportError{Format: string(format), Path: outDir, Err: err}
	}

	path := filepath.Join(outDir, export.FileName(report, exporter))
	file, err := os.Create(path)
	if err != nil {
		return "", &internal.ExportError{Format: string(format), Path: path, Err: err}
	}

	if err := exporter.Export(report, file); err != nil {
		_ = file.Close()
		return "", &internal.ExportError{Format: string(format), Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return "", &internal.ExportError{Format: string(format), Path: path, Err: err}
	}

	return path, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(internal.FormatPDF), "Export format (pdf, word, md)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory")
}
