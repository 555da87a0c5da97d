package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "full config",
			content: `provider: openai
text_model: gpt-4o
image_model: dall-e-3
storage_path: /tmp/reports.db
defaults:
  length: long
  output_format: md
  include_contributors: true
`,
			check: func(t *testing.T, cfg Config) {
				if cfg.Provider != ProviderOpenAI {
					t.Errorf("Provider = %q, want openai", cfg.Provider)
				}
				if cfg.TextModel != "gpt-4o" || cfg.ImageModel != "dall-e-3" {
					t.Errorf("models = (%q, %q), want (gpt-4o, dall-e-3)", cfg.TextModel, cfg.ImageModel)
				}
				if cfg.Defaults.Length != LengthLong || cfg.Defaults.OutputFormat != FormatMarkdown || !cfg.Defaults.IncludeContributors {
					t.Errorf("Defaults = %+v, want long/md/contributors", cfg.Defaults)
				}
			},
		},
		{
			name:    "partial config keeps defaults",
			content: "storage_path: /tmp/custom.db\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Provider != ProviderGemini {
					t.Errorf("Provider = %q, want the gemini default", cfg.Provider)
				}
				if cfg.TextModel != "gemini-2.5-flash" {
					t.Errorf("TextModel = %q, want the default model", cfg.TextModel)
				}
				if cfg.StoragePath != "/tmp/custom.db" {
					t.Errorf("StoragePath = %q, want /tmp/custom.db", cfg.StoragePath)
				}
			},
		},
		{
			name:    "unknown provider rejected",
			content: "provider: anthropic\n",
			wantErr: "unsupported provider",
		},
		{
			name: "invalid defaults rejected",
			content: `defaults:
  length: epic
  output_format: pdf
`,
			wantErr: "invalid defaults",
		},
		{
			name:    "malformed yaml rejected",
			content: "provider: [unclosed\n",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			cfg, err := LoadConfig(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("LoadConfig() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() failed: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() on a missing file failed: %v", err)
	}
	want := DefaultConfig()
	if cfg.Provider != want.Provider || cfg.TextModel != want.TextModel || cfg.Defaults != want.Defaults {
		t.Errorf("LoadConfig() = %+v, want the defaults %+v", cfg, want)
	}
}

func TestCredentialEnvVar(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{provider: ProviderGemini, want: "GEMINI_API_KEY"},
		{provider: ProviderOpenAI, want: "OPENAI_API_KEY"},
		{provider: "", want: "GEMINI_API_KEY"},
	}

	for _, tt := range tests {
		cfg := Config{Provider: tt.provider}
		if got := cfg.CredentialEnvVar(); got != tt.want {
			t.Errorf("CredentialEnvVar() for %q = %q, want %q", tt.provider, got, tt.want)
		}
	}
}
