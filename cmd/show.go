package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true).
			Underline(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Display a report from history",
	Long: `Display a report on the terminal: topic, table of contents and every
section's text. For sections whose image fell back to a placeholder, the
attempted image prompt is printed so it can be reused manually.`,
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

		fmt.Println(titleStyle.Render(report.Topic))
		fmt.Println(metaStyle.Render(fmt.Sprintf("Generated %s · %d section(s)", report.CreatedAt.Local().Format("2006-01-02 15:04"), len(report.Sections))))
		fmt.Println()

		fmt.Println(headingStyle.Render("Table of Contents"))
		for i, section := range report.Sections {
			fmt.Printf("  %d. %s\n", i+1, section.Title)
		}
		fmt.Println()

		for i, section := range report.Sections {
			fmt.Println(headingStyle.Render(fmt.Sprintf("%d. %s", i+1, section.Title)))
			if section.IsPlaceholder && section.ImagePrompt != "" {
				fmt.Println(promptStyle.Render("  [image unavailable, prompt: " + section.ImagePrompt + "]"))
			}
			fmt.Println()
			fmt.Println(section.Content)
			if i < len(report.Sections)-1 {
				fmt.Println()
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
