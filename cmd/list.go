package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

var (
	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true)

	topicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List previously generated reports",
	Long: `List the report history, newest first.

Each entry shows the report id (used by show, export and delete), the
creation time, the topic and the section count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		history := internal.NewHistoryStore(store)
		reports, err := history.List()
		if err != nil {
			return fmt.Errorf("failed to load report history: %w", err)
		}

		if len(reports) == 0 {
			internal.PrintInfo("No reports generated yet. Run 'raporgen generate <topic>' to create one.")
			return nil
		}

		for _, report := range reports {
			meta := fmt.Sprintf("%s · %d section(s)", report.CreatedAt.Local().Format("2006-01-02 15:04"), len(report.Sections))
			if placeholders := report.PlaceholderCount(); placeholders > 0 {
				meta += fmt.Sprintf(" · %d placeholder image(s)", placeholders)
			}
			fmt.Printf("%s  %s\n    %s\n", idStyle.Render(fmt.Sprintf("%d", report.ID)), topicStyle.Render(report.Topic), metaStyle.Render(meta))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
