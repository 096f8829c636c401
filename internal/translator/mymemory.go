package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultMyMemoryBaseURL = "https://api.mymemory.translated.net"

// SourceDetector guesses the language of a text. *detector.Detector satisfies it.
type SourceDetector interface {
	DetectISO(text string) (string, bool)
}

type MyMemoryService struct {
	email    string
	baseURL  string
	detector SourceDetector
	client   *http.Client
}

// NewMyMemoryService builds the keyless MyMemory provider. MyMemory needs an
// explicit language pair, so the source language comes from det when the
// request leaves it empty; det may be nil, in which case English is assumed.
func NewMyMemoryService(email, baseURL string, det SourceDetector, timeout time.Duration) *MyMemoryService {
	if baseURL == "" {
		baseURL = DefaultMyMemoryBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MyMemoryService{
		email:    email,
		baseURL:  strings.TrimRight(baseURL, "/"),
		detector: det,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) sourceLang(req TranslateRequest) string {
	if req.SourceLang != "" && req.SourceLang != "auto" {
		return req.SourceLang
	}
	if s.detector != nil {
		if detected, ok := s.detector.DetectISO(req.Text); ok {
			return detected
		}
	}
	return "en"
}

func (s *MyMemoryService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := s.sourceLang(req)
	result.SourceLang = sourceLang

	// MyMemory rejects identical pairs; the text already is in the target language.
	if baseLang(sourceLang) == baseLang(req.TargetLang) {
		result.TranslatedText = req.Text
		result.Confidence = 1
		return result, nil
	}

	query := url.Values{}
	query.Set("q", req.Text)
	query.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, req.TargetLang))
	if s.email != "" {
		query.Set("de", s.email)
	}
	apiURL := fmt.Sprintf("%s/get?%s", s.baseURL, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("API returned status %d", resp.StatusCode)
		return result, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		ResponseStatus  json.Number `json:"responseStatus"`
		ResponseDetails string      `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, err
	}

	if mymemResp.ResponseStatus.String() != "200" {
		result.Error = fmt.Sprintf("API error: %s (%s)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
		return result, fmt.Errorf("API error: %s", mymemResp.ResponseDetails)
	}

	result.TranslatedText = mymemResp.ResponseData.TranslatedText
	result.Confidence = min(max(mymemResp.ResponseData.Match, 0), 1)

	return result, nil
}

func (s *MyMemoryService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "es", "fr", "de", "zh-CN"}, nil
}

// baseLang reduces "zh-CN" to "zh".
func baseLang(code string) string {
	code = strings.ToLower(code)
	if i := strings.IndexAny(code, "-_"); i > 0 {
		return code[:i]
	}
	return code
}
