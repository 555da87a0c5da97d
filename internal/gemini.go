package internal

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiBackend talks to the Gemini REST API: generateContent for outline and
// prose, the imagen predict endpoint for images.
type GeminiBackend struct {
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
}

// NewGeminiBackend creates a Gemini backend from config
func NewGeminiBackend(cfg Config) *GeminiBackend {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &GeminiBackend{
		baseURL:    strings.TrimRight(baseURL, "/"),
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		httpClient: &http.Client{},
	}
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiSchema struct {
	Type  string        `json:"type"`
	Items *geminiSchema `json:"items,omitempty"`
}

type geminiGenerateRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiPredictRequest struct {
	Instances  []geminiPredictInstance `json:"instances"`
	Parameters geminiPredictParameters `json:"parameters"`
}

type geminiPredictInstance struct {
	Prompt string `json:"prompt"`
}

type geminiPredictParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type geminiPredictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType,omitempty"`
	} `json:"predictions"`
}

// Outline requests section titles as a JSON array via a response schema, so
// the model answer is machine-parseable instead of free text.
func (g *GeminiBackend) Outline(ctx context.Context, apiKey, topic string) ([]string, error) {
	reqBody := geminiGenerateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: BuildOutlinePrompt(topic)}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: &geminiSchema{
				Type:  "ARRAY",
				Items: &geminiSchema{Type: "STRING"},
			},
		},
	}

	text, err := g.generateContent(ctx, apiKey, reqBody)
	if err != nil {
		return nil, err
	}
	return ParseOutline(text), nil
}

// Text requests prose for a prompt
func (g *GeminiBackend) Text(ctx context.Context, apiKey, prompt string) (string, error) {
	reqBody := geminiGenerateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	return g.generateContent(ctx, apiKey, reqBody)
}

// Image requests one image from the imagen predict endpoint. An empty
// prediction list yields an empty payload, not an error.
func (g *GeminiBackend) Image(ctx context.Context, apiKey, prompt, aspect string) ([]byte, error) {
	reqBody := geminiPredictRequest{
		Instances:  []geminiPredictInstance{{Prompt: prompt}},
		Parameters: geminiPredictParameters{SampleCount: 1, AspectRatio: aspect},
	}

	url := fmt.Sprintf("%s/models/%s:predict", g.baseURL, g.imageModel)
	body, err := g.post(ctx, apiKey, url, reqBody)
	if err != nil {
		return nil, err
	}

	var apiResp geminiPredictResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse predict response: %w", err)
	}
	if len(apiResp.Predictions) == 0 || apiResp.Predictions[0].BytesBase64Encoded == "" {
		return nil, nil
	}

	payload, err := base64.StdEncoding.DecodeString(apiResp.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return payload, nil
}

func (g *GeminiBackend) generateContent(ctx context.Context, apiKey string, reqBody geminiGenerateRequest) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.textModel)
	body, err := g.post(ctx, apiKey, url, reqBody)
	if err != nil {
		return "", err
	}

	var apiResp geminiGenerateResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", g.textModel)
	}
	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

// post sends a JSON request and returns the raw response body. API errors are
// returned with the response body preserved, because the advisory layer
// classifies failures by the provider's error text.
func (g *GeminiBackend) post(ctx context.Context, apiKey, url string, reqBody interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		LogDebug("Gemini API error (status %d): %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// ParseOutline parses a model answer into section titles. Anything that does
// not parse as a JSON array of strings becomes an empty outline; rejecting an
// empty outline is the pipeline's call, not the backend's.
func ParseOutline(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var titles []string
	if err := json.Unmarshal([]byte(text), &titles); err != nil {
		LogWarn("Outline did not parse as a string array, treating as empty: %v", err)
		return []string{}
	}

	cleaned := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}
