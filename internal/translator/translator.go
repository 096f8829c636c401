// Package translator translates generated questions into the candidate's
// preferred language and keeps provider failures from reaching the page.
package translator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrorSentinel replaces the translation whenever the provider fails.
const ErrorSentinel = "Translation error."

// Outcome is the translated text, or ErrorSentinel with Err set.
type Outcome struct {
	Text string
	Err  error
}

// Failed reports whether the provider call failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Translator wraps a single provider. No retries, no batching.
type Translator struct {
	service TranslationService
	log     zerolog.Logger
}

func New(service TranslationService, log zerolog.Logger) *Translator {
	return &Translator{service: service, log: log}
}

// Translate converts text to targetLang, a provider code such as "fr".
func (t *Translator) Translate(ctx context.Context, text, targetLang string) Outcome {
	res, err := t.service.Translate(ctx, TranslateRequest{Text: text, TargetLang: targetLang})
	if err == nil && res == nil {
		err = errors.New("provider returned no result")
	}
	if err == nil && res.Error != "" {
		err = errors.New(res.Error)
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", t.service.Name(), err)
		t.log.Warn().Err(err).Str("target_lang", targetLang).Msg("translation failed")
		return Outcome{Text: ErrorSentinel, Err: err}
	}

	t.log.Debug().
		Str("service", res.ServiceName).
		Str("source_lang", res.SourceLang).
		Str("target_lang", targetLang).
		Dur("latency", res.Latency).
		Msg("translation done")

	return Outcome{Text: res.TranslatedText}
}
