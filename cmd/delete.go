package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

var clearForce bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <report-id>",
	Short: "Delete one report from history",
	Args:  cobra.ExactArgs(1),
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
		if err := history.DeleteByID(id); err != nil {
			return fmt.Errorf("failed to delete report %d: %w", id, err)
		}

		internal.PrintSuccess(fmt.Sprintf("Report %d deleted", id))
		return nil
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire report history",
	Long: `Delete every report from history. This cannot be undone; a confirmation
is asked unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearForce {
			fmt.Print("Delete the entire report history? This cannot be undone. [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				internal.PrintInfo("Aborted, history kept.")
				return nil
			}
		}

		_, store, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		history := internal.NewHistoryStore(store)
		if err := history.Clear(); err != nil {
			return fmt.Errorf("failed to clear report history: %w", err)
		}

		internal.PrintSuccess("Report history cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "Skip the confirmation prompt")
}
