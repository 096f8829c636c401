package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient generates text through the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates the underlying genai client. baseURL is only set in
// tests and self-hosted proxies.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Name() string {
	return "gemini"
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) Result {
	if strings.TrimSpace(prompt) == "" {
		return Fail(FailureInvalidPrompt, 0, "empty prompt")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			return resultForStatus(apiErr.Code, apiErr.Message)
		}
		return Fail(FailureTransport, 0, err.Error())
	}

	if resp == nil {
		return Fail(FailureMalformedResponse, 0, detailUnexpectedForm)
	}

	text := resp.Text()
	if text == "" {
		return Fail(FailureMalformedResponse, 0, detailMissingText)
	}

	return Success(text)
}
