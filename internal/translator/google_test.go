package translator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleService_Translate_InvalidTarget(t *testing.T) {
	svc := &GoogleService{}

	result, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "not a language"})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.Error, "invalid target language")
	assert.Equal(t, "google", result.ServiceName)
}

func TestGoogleService_Translate_NoClient(t *testing.T) {
	svc := &GoogleService{}

	result, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "fr"})

	require.Error(t, err)
	assert.Equal(t, "client not initialised", result.Error)
	assert.Error(t, svc.IsAvailable(context.Background()))
	assert.NoError(t, svc.Close())
}
