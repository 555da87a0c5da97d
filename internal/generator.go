package internal

import (
	"context"
	"encoding/base64"
	"strings"
)

// ImageResult is the outcome of an image generation attempt. Image generation
// never fails outward; every failure is converted into a placeholder result
// with the cause recorded in ImageError.
type ImageResult struct {
	ImageURL      string
	ImageError    string // "" on success
	ImagePrompt   string
	IsPlaceholder bool
}

// Generator issues the backend calls for a report run: outline, per-section
// content and per-section images. The credential is resolved before every
// call so an override change between calls takes effect immediately.
type Generator struct {
	backend     Backend
	credentials *CredentialResolver
}

// NewGenerator creates a generator over a backend and credential resolver
func NewGenerator(backend Backend, credentials *CredentialResolver) *Generator {
	return &Generator{backend: backend, credentials: credentials}
}

// GenerateOutline requests the section titles for a topic. An empty outline
// is not an error here; rejecting it is the pipeline's responsibility.
func (g *Generator) GenerateOutline(ctx context.Context, topic string) ([]string, error) {
	apiKey, err := g.credentials.Resolve()
	if err != nil {
		return nil, err
	}

	titles, err := g.backend.Outline(ctx, apiKey, topic)
	if err != nil {
		return nil, &BackendError{Op: "outline", Err: err}
	}
	return titles, nil
}

// GenerateContent requests prose for one section. Failures are fatal to the
// run; a section cannot exist without its text.
func (g *Generator) GenerateContent(ctx context.Context, topic, sectionTitle string, opts GenerationOptions) (string, error) {
	apiKey, err := g.credentials.Resolve()
	if err != nil {
		return "", err
	}

	text, err := g.backend.Text(ctx, apiKey, BuildContentPrompt(topic, sectionTitle, opts))
	if err != nil {
		return "", &BackendError{Op: "content", Err: err}
	}
	return strings.TrimSpace(text), nil
}

// GenerateImage requests an illustration for one section. It never returns
// an error: backend failures, missing credentials and empty payloads all
// degrade to a placeholder carrying the failure reason and the prompt that
// was attempted.
func (g *Generator) GenerateImage(ctx context.Context, topic, sectionTitle string) ImageResult {
	prompt := BuildImagePrompt(topic, sectionTitle)

	apiKey, err := g.credentials.Resolve()
	if err != nil {
		return placeholderResult(sectionTitle, prompt, err.Error())
	}

	payload, err := g.backend.Image(ctx, apiKey, prompt, "16:9")
	if err != nil {
		return placeholderResult(sectionTitle, prompt, err.Error())
	}
	if len(payload) == 0 {
		return placeholderResult(sectionTitle, prompt, "backend returned no image payload")
	}

	return ImageResult{
		ImageURL:    "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload),
		ImagePrompt: prompt,
	}
}

func placeholderResult(sectionTitle, prompt, cause string) ImageResult {
	return ImageResult{
		ImageURL:      PlaceholderImage(sectionTitle, prompt),
		ImageError:    cause,
		ImagePrompt:   prompt,
		IsPlaceholder: true,
	}
}

// AssembleSection generates content and image for one section concurrently,
// waits for both and merges them. The second return value is the image error
// ("" when none); the error return carries only fatal content failures.
func (g *Generator) AssembleSection(ctx context.Context, topic, sectionTitle string, opts GenerationOptions) (Section, string, error) {
	type contentResult struct {
		text string
		err  error
	}

	contentCh := make(chan contentResult, 1)
	imageCh := make(chan ImageResult, 1)

	go func() {
		text, err := g.GenerateContent(ctx, topic, sectionTitle, opts)
		contentCh <- contentResult{text: text, err: err}
	}()
	go func() {
		imageCh <- g.GenerateImage(ctx, topic, sectionTitle)
	}()

	content := <-contentCh
	image := <-imageCh

	if content.err != nil {
		return Section{}, "", content.err
	}

	section := Section{
		Title:         sectionTitle,
		Content:       content.text,
		ImageURL:      image.ImageURL,
		ImagePrompt:   image.ImagePrompt,
		IsPlaceholder: image.IsPlaceholder,
	}
	return section, image.ImageError, nil
}
