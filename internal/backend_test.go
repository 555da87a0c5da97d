package internal

import "testing"

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantErr  bool
	}{
		{name: "gemini", provider: ProviderGemini},
		{name: "openai", provider: ProviderOpenAI},
		{name: "unknown", provider: "anthropic", wantErr: true},
		{name: "empty", provider: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Provider = tt.provider

			backend, err := NewBackend(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBackend() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && backend == nil {
				t.Error("NewBackend() returned nil backend")
			}
		})
	}
}
