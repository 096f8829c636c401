package translator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	translateFunc func(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
	callCount     atomic.Int32
	lastReq       TranslateRequest
}

func (s *stubService) Name() string { return "stub" }

func (s *stubService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	s.callCount.Add(1)
	s.lastReq = req
	if s.translateFunc != nil {
		return s.translateFunc(ctx, req)
	}
	return &ServiceResult{ServiceName: "stub", TranslatedText: "traduit: " + req.Text}, nil
}

func (s *stubService) IsAvailable(ctx context.Context) error { return nil }

func (s *stubService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "fr"}, nil
}

func TestTranslator_Translate_Success(t *testing.T) {
	svc := &stubService{}
	tr := New(svc, zerolog.Nop())

	out := tr.Translate(context.Background(), "Q1?", "fr")

	assert.False(t, out.Failed())
	assert.Equal(t, "traduit: Q1?", out.Text)
	assert.Equal(t, TranslateRequest{Text: "Q1?", TargetLang: "fr"}, svc.lastReq)
	assert.Equal(t, int32(1), svc.callCount.Load())
}

func TestTranslator_Translate_FailuresBecomeSentinel(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
	}{
		{
			name: "provider error",
			fn: func(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
				return &ServiceResult{ServiceName: "stub", Error: "boom"}, errors.New("boom")
			},
		},
		{
			name: "error without result",
			fn: func(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
				return nil, errors.New("connection reset")
			},
		},
		{
			name: "nil result and nil error",
			fn: func(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
				return nil, nil
			},
		},
		{
			name: "error only in result",
			fn: func(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
				return &ServiceResult{ServiceName: "stub", Error: "quota exceeded"}, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{translateFunc: tt.fn}
			tr := New(svc, zerolog.Nop())

			out := tr.Translate(context.Background(), "Q1?", "de")

			require.True(t, out.Failed())
			assert.Equal(t, ErrorSentinel, out.Text)
			assert.Contains(t, out.Err.Error(), "stub")
			assert.Equal(t, int32(1), svc.callCount.Load(), "no retry")
		})
	}
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		label string
		code  string
	}{
		{"English", "en"},
		{"Spanish", "es"},
		{"French", "fr"},
		{"German", "de"},
		{"Chinese", "zh-CN"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			code, ok := CodeFor(tt.label)
			assert.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}

	_, ok := CodeFor("english")
	assert.False(t, ok, "labels are matched exactly")
}

func TestLanguages_AllMapped(t *testing.T) {
	assert.Contains(t, Languages, DefaultLanguage)
	for _, label := range Languages {
		_, ok := CodeFor(label)
		assert.True(t, ok, label)
	}
}
