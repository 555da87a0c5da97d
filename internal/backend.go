package internal

import (
	"context"
	"fmt"
)

// Backend abstracts the generative-AI provider behind the three capabilities
// the pipeline needs. Implementations must not cache credentials; the
// resolved key is passed per call so an override change takes effect
// immediately.
type Backend interface {
	// Outline requests a machine-parseable list of section titles for a
	// topic. A response that does not parse as an array of strings is
	// returned as an empty slice, not an error; only transport and API
	// failures are errors.
	Outline(ctx context.Context, apiKey, topic string) ([]string, error)

	// Text requests prose for a prompt
	Text(ctx context.Context, apiKey, prompt string) (string, error)

	// Image requests an image for a prompt with an aspect-ratio hint such
	// as "16:9". An empty slice means the backend produced no payload.
	Image(ctx context.Context, apiKey, prompt, aspect string) ([]byte, error)
}

// NewBackend builds the configured backend provider
func NewBackend(cfg Config) (Backend, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiBackend(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIBackend(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q (supported: gemini, openai)", cfg.Provider)
	}
}
