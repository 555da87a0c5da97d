package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend provider names
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds process-wide settings loaded at startup: the backend provider,
// model names, storage location and default generation options.
type Config struct {
	Provider    string            `yaml:"provider"`
	TextModel   string            `yaml:"text_model"`
	ImageModel  string            `yaml:"image_model"`
	BaseURL     string            `yaml:"base_url"`
	StoragePath string            `yaml:"storage_path"`
	Defaults    GenerationOptions `yaml:"defaults"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		TextModel:  "gemini-2.5-flash",
		ImageModel: "imagen-3.0-generate-002",
		Defaults:   DefaultGenerationOptions(),
	}
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".raporgen", "config.yaml"), nil
}

// LoadConfig loads configuration from a YAML file layered over the defaults.
// A missing file is not an error. A .env file in the working directory is
// honored for the environment-based default credential.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		LogDebug("No .env file loaded: %v", err)
	}

	cfg := DefaultConfig()

	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			LogDebug("No config file at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	switch cfg.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return cfg, fmt.Errorf("unsupported provider %q (supported: gemini, openai)", cfg.Provider)
	}
	if err := cfg.Defaults.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid defaults in config %s: %w", path, err)
	}

	return cfg, nil
}

// CredentialEnvVar names the environment variable holding the process-wide
// default API key for the configured provider.
func (c Config) CredentialEnvVar() string {
	if c.Provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}
