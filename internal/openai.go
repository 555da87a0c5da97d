package internal

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIBackend implements Backend using the official openai-go SDK, for
// OpenAI itself or any OpenAI-compatible endpoint via base_url.
type OpenAIBackend struct {
	baseURL    string
	textModel  string
	imageModel string
}

// NewOpenAIBackend creates an OpenAI backend from config, filling in
// provider-appropriate model defaults when the config still carries the
// Gemini ones.
func NewOpenAIBackend(cfg Config) *OpenAIBackend {
	textModel := cfg.TextModel
	if textModel == "" || textModel == DefaultConfig().TextModel {
		textModel = "gpt-4o"
	}
	imageModel := cfg.ImageModel
	if imageModel == "" || imageModel == DefaultConfig().ImageModel {
		imageModel = "dall-e-3"
	}
	return &OpenAIBackend{
		baseURL:    cfg.BaseURL,
		textModel:  textModel,
		imageModel: imageModel,
	}
}

func (o *OpenAIBackend) client(apiKey string) openai.Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if o.baseURL != "" {
		opts = append(opts, option.WithBaseURL(o.baseURL))
	}
	return openai.NewClient(opts...)
}

// Outline requests section titles. Chat completions have no response schema
// knob equivalent to Gemini's, so the prompt demands a bare JSON array and
// the answer goes through the same lenient ParseOutline policy.
func (o *OpenAIBackend) Outline(ctx context.Context, apiKey, topic string) ([]string, error) {
	text, err := o.complete(ctx, apiKey, BuildOutlinePrompt(topic))
	if err != nil {
		return nil, err
	}
	return ParseOutline(text), nil
}

// Text requests prose for a prompt
func (o *OpenAIBackend) Text(ctx context.Context, apiKey, prompt string) (string, error) {
	return o.complete(ctx, apiKey, prompt)
}

// Image requests one image and returns its decoded payload
func (o *OpenAIBackend) Image(ctx context.Context, apiKey, prompt, aspect string) ([]byte, error) {
	client := o.client(apiKey)

	size := openai.ImageGenerateParamsSize1024x1024
	if aspect == "16:9" {
		size = openai.ImageGenerateParamsSize1792x1024
	}

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(o.imageModel),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		Size:           size,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, nil
	}

	payload, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return payload, nil
}

func (o *OpenAIBackend) complete(ctx context.Context, apiKey, prompt string) (string, error) {
	client := o.client(apiKey)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.textModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
