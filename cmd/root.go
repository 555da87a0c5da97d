package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

var (
	verbose     bool
	storagePath string
	configPath  string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "raporgen",
	Short: "Generate in-depth, illustrated AI reports on any topic",
	Long: `An AI report generator CLI.

Give it a topic and it asks a generative-AI backend for a section outline,
then generates prose and an illustration for every section, assembles the
result into a report, keeps it in a local history and exports it to PDF,
a word-processor document or Markdown.

Features:
  • Outline-driven section generation with per-section illustrations
  • Image failures degrade to placeholders instead of aborting the report
  • Durable local report history (list, show, delete, clear)
  • Export to PDF, Word-compatible documents or Markdown
  • Short / normal / long report depth and a key-contributors option
  • Per-user API key override on top of the environment default

Quick Start:
  raporgen generate "Foundations of Quantum Physics"
  raporgen list                       # Browse generated reports
  raporgen export <report-id> -f word # Export a report from history`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (path to the report database file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openEnvironment loads the config and opens the report store. The caller
// owns closing the store.
func openEnvironment() (internal.Config, *internal.Store, error) {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return cfg, nil, err
	}

	custom := storagePath
	if custom == "" {
		custom = cfg.StoragePath
	}
	path, err := internal.DefaultStoragePath(custom)
	if err != nil {
		return cfg, nil, err
	}

	store, err := internal.OpenStore(path)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to open report storage: %w", err)
	}
	return cfg, store, nil
}
