package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultHuggingFaceBaseURL = "https://api-inference.huggingface.co"
	DefaultHuggingFaceModel   = "mistralai/Mistral-7B-Instruct-v0.1"
)

// HuggingFaceClient calls the Hugging Face inference API for a single model.
type HuggingFaceClient struct {
	token    string
	endpoint string
	client   *http.Client
}

// NewHuggingFaceClient builds a client for {baseURL}/models/{model}. Empty
// baseURL or model fall back to the defaults.
func NewHuggingFaceClient(token, baseURL, model string, timeout time.Duration) *HuggingFaceClient {
	if baseURL == "" {
		baseURL = DefaultHuggingFaceBaseURL
	}
	if model == "" {
		model = DefaultHuggingFaceModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HuggingFaceClient{
		token:    token,
		endpoint: fmt.Sprintf("%s/models/%s", strings.TrimRight(baseURL, "/"), model),
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *HuggingFaceClient) Name() string {
	return "huggingface"
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Generate sends one request and never retries.
func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) Result {
	if strings.TrimSpace(prompt) == "" {
		return Fail(FailureInvalidPrompt, 0, "empty prompt")
	}

	jsonData, err := json.Marshal(inferenceRequest{Inputs: prompt})
	if err != nil {
		return Fail(FailureTransport, 0, fmt.Sprintf("failed to marshal request: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return Fail(FailureTransport, 0, fmt.Sprintf("failed to create request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Fail(FailureTransport, 0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fail(FailureTransport, resp.StatusCode, fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return resultForStatus(resp.StatusCode, string(body))
	}

	return decodeInferenceResponse(body)
}

// decodeInferenceResponse expects [{"generated_text": "..."}, ...] and reads
// only the first element.
func decodeInferenceResponse(body []byte) Result {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil || len(items) == 0 {
		return Fail(FailureMalformedResponse, http.StatusOK, detailUnexpectedForm)
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(items[0], &first); err != nil || first == nil {
		return Fail(FailureMalformedResponse, http.StatusOK, detailUnexpectedForm)
	}

	raw, ok := first["generated_text"]
	if !ok {
		return Fail(FailureMalformedResponse, http.StatusOK, detailMissingText)
	}

	// null decodes into a string without error, so decode through a pointer.
	var text *string
	if err := json.Unmarshal(raw, &text); err != nil || text == nil {
		return Fail(FailureMalformedResponse, http.StatusOK, detailMissingText)
	}

	return Success(*text)
}
