/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/valpere/hireassist/internal/config"
	"github.com/valpere/hireassist/internal/detector"
	"github.com/valpere/hireassist/internal/generation"
	"github.com/valpere/hireassist/internal/orchestrator"
	"github.com/valpere/hireassist/internal/sentiment"
	"github.com/valpere/hireassist/internal/translator"
	"github.com/valpere/hireassist/internal/validator"
)

// bindFlag ties a flag to a config key; an unset flag leaves the environment
// and defaults in charge.
func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag.Name, err))
	}
}

func buildGenerator(ctx context.Context, cfg config.GenerationConfig) (generation.Generator, error) {
	switch cfg.Provider {
	case "huggingface":
		return generation.NewHuggingFaceClient(cfg.Token, cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	case "gemini":
		return generation.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown generation provider: %s", cfg.Provider)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// buildTranslationService returns the provider and a closer for any client it opened.
func buildTranslationService(ctx context.Context, cfg config.TranslationConfig) (translator.TranslationService, io.Closer, error) {
	switch cfg.Provider {
	case "mymemory":
		return translator.NewMyMemoryService(cfg.MyMemoryEmail, cfg.MyMemoryBaseURL, detector.New(), cfg.Timeout), nopCloser{}, nil
	case "google":
		svc, err := translator.NewGoogleService(ctx, cfg.Credentials, cfg.GoogleAPIKey)
		if err != nil {
			return nil, nil, err
		}
		return svc, svc, nil
	default:
		return nil, nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}

// buildOrchestrator wires every collaborator from configuration. The returned
// closer releases provider clients.
func buildOrchestrator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*orchestrator.Orchestrator, io.Closer, error) {
	gen, err := buildGenerator(ctx, cfg.Generation)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build generator: %w", err)
	}

	svc, closer, err := buildTranslationService(ctx, cfg.Translation)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build translation service: %w", err)
	}

	orch := orchestrator.New(
		gen,
		translator.New(svc, log.With().Str("component", "translator").Logger()),
		sentiment.NewScorer(nil),
		validator.New(),
		orchestrator.OrchestratorConfig{
			Timeout:              cfg.Interview.Timeout,
			ShortCircuitFailures: cfg.Interview.ShortCircuitFailures,
		},
		log.With().Str("component", "orchestrator").Logger(),
	)

	log.Info().
		Str("generator", gen.Name()).
		Str("translator", svc.Name()).
		Bool("short_circuit_failures", cfg.Interview.ShortCircuitFailures).
		Msg("services configured")

	return orch, closer, nil
}
