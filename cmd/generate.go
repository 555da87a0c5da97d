package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

var (
	generateLength       string
	generateContributors bool
	generateFormat       string
	generateOut          string
	generateExport       bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a new illustrated report on a topic",
	Long: `Generate a new report: the backend produces a section outline, then prose
and an illustration are generated concurrently for each section, in outline
order. Sections whose image generation fails get a placeholder image carrying
the attempted prompt; the report itself still completes.

The finished report is saved to history. Use --export to also write it to a
file right away.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(strings.Join(args, " "))

		cfg, store, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		opts := cfg.Defaults
		if cmd.Flags().Changed("length") {
			opts.Length = internal.ReportLength(generateLength)
		}
		if cmd.Flags().Changed("contributors") {
			opts.IncludeContributors = generateContributors
		}
		if cmd.Flags().Changed("format") {
			opts.OutputFormat = internal.OutputFormat(generateFormat)
		}
		if err := opts.Validate(); err != nil {
			return err
		}

		backend, err := internal.NewBackend(cfg)
		if err != nil {
			return err
		}
		credentials := internal.NewCredentialResolver(store, cfg.CredentialEnvVar())
		generator := internal.NewGenerator(backend, credentials)
		history := internal.NewHistoryStore(store)

		pipeline := internal.NewPipeline(generator, history)
		pipeline.OnProgress(func(update internal.ProgressUpdate) {
			internal.PrintInfo(update.Message)
		})

		report, advisory, err := pipeline.Run(cmd.Context(), topic, opts)
		if err != nil {
			if errors.Is(err, internal.ErrMissingCredential) {
				internal.PrintError(err.Error())
				return fmt.Errorf("report generation aborted: missing API key")
			}
			return fmt.Errorf("report generation failed: %w", err)
		}

		internal.PrintSuccess(fmt.Sprintf("Report %d generated: %q with %d section(s)", report.ID, report.Topic, len(report.Sections)))
		if advisory != nil {
			internal.PrintWarning(advisory.Message)
		}

		if generateExport {
			path, err := writeReportFile(report, opts.OutputFormat, generateOut)
			if err != nil {
				// Export failures never touch the report or its history entry
				internal.PrintError(err.Error())
				return err
			}
			internal.PrintSuccess(fmt.Sprintf("Report exported to %s", path))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateLength, "length", "l", string(internal.LengthNormal), "Report depth (short, normal, long)")
	generateCmd.Flags().BoolVar(&generateContributors, "contributors", false, "Include a key-contributors subsection per section")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", string(internal.FormatPDF), "Export format (pdf, word, md)")
	generateCmd.Flags().BoolVar(&generateExport, "export", false, "Export the report to a file after generation")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", ".", "Output directory for --export")
}
