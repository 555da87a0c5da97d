package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Emrevrg/ai-rapor-olu-turucu/internal"
)

// keyCmd groups the API key management subcommands.
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored API key",
	Long: `Manage the API key used for report generation.

A key stored with 'key set' takes precedence over the environment
variable for the configured provider.`,
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store an API key, overriding the environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.TrimSpace(args[0])
		if key == "" {
			return fmt.Errorf("API key must not be empty")
		}

		cfg, store, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		resolver := internal.NewCredentialResolver(store, cfg.CredentialEnvVar())
		if err := resolver.SetOverride(key); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}

		internal.PrintSuccess("API key stored")
		return nil
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which API key would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		resolver := internal.NewCredentialResolver(store, cfg.CredentialEnvVar())

		override, ok, err := resolver.Override()
		if err != nil {
			return fmt.Errorf("failed to read stored API key: %w", err)
		}
		if ok {
			fmt.Printf("Stored key: %s\n", maskKey(override))
			return nil
		}

		key, err := resolver.Resolve()
		if err != nil {
			internal.PrintInfo(fmt.Sprintf("No API key configured. Set %s or run 'raporgen key set <key>'.", cfg.CredentialEnvVar()))
			return nil
		}
		fmt.Printf("Environment key (%s): %s\n", cfg.CredentialEnvVar(), maskKey(key))
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openEnvironment()
		if err != nil {
			return err
		}
		defer store.Close()

		resolver := internal.NewCredentialResolver(store, cfg.CredentialEnvVar())
		if err := resolver.SetOverride(""); err != nil {
			return fmt.Errorf("failed to remove stored API key: %w", err)
		}

		internal.PrintSuccess("Stored API key removed")
		return nil
	},
}

// maskKey keeps only the last four characters visible.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyClearCmd)
}
