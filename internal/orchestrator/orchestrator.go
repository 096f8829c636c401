// Package orchestrator runs one interview submission through validation,
// generation, translation and sentiment scoring, in that order.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/valpere/hireassist/internal"
	"github.com/valpere/hireassist/internal/generation"
	"github.com/valpere/hireassist/internal/postprocess"
	"github.com/valpere/hireassist/internal/sentiment"
	"github.com/valpere/hireassist/internal/translator"
)

// PromptTemplate is filled with the comma-joined tech stack.
const PromptTemplate = "Generate 3-5 technical interview questions for a candidate proficient in %s."

// Translator is the translation stage. *translator.Translator satisfies it.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) translator.Outcome
}

// Scorer is the sentiment stage. *sentiment.Scorer satisfies it.
type Scorer interface {
	Score(text string) sentiment.Label
}

// Validator checks a profile before any outbound call. *validator.Validator satisfies it.
type Validator interface {
	Validate(p internal.CandidateProfile) error
}

type OrchestratorConfig struct {
	// Timeout bounds the whole submission; zero means no deadline.
	Timeout time.Duration
	// ShortCircuitFailures stops after a failed generation instead of
	// translating and scoring the failure message.
	ShortCircuitFailures bool
}

type Orchestrator struct {
	generator  generation.Generator
	translator Translator
	scorer     Scorer
	validator  Validator
	config     OrchestratorConfig
	log        zerolog.Logger
}

func New(generator generation.Generator, tr Translator, scorer Scorer, v Validator, config OrchestratorConfig, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		generator:  generator,
		translator: tr,
		scorer:     scorer,
		validator:  v,
		config:     config,
		log:        log,
	}
}

// BuildPrompt renders the generation prompt for a tech stack.
func BuildPrompt(p internal.CandidateProfile) string {
	return fmt.Sprintf(PromptTemplate, p.TechStackText())
}

// Run processes a single submission. It never returns an error: every failure
// ends up on the Submission as displayable text.
func (o *Orchestrator) Run(ctx context.Context, profile internal.CandidateProfile) *Submission {
	s := newSubmission(uuid.New().String(), profile)
	log := o.log.With().Str("submission_id", s.ID).Logger()

	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	s.transition(StateValidating)
	if err := o.validator.Validate(profile); err != nil {
		s.ValidationErr = err
		s.transition(StateError)
		log.Info().Err(err).Msg("submission rejected")
		return s
	}

	s.transition(StateGenerating)
	s.Prompt = BuildPrompt(profile)
	s.Generation = o.generator.Generate(ctx, s.Prompt)
	if s.Generation.OK() {
		s.Generation.Text = postprocess.Clean(s.Generation.Text, s.Prompt)
	} else {
		log.Warn().
			Str("generator", o.generator.Name()).
			Stringer("kind", s.Generation.Failure.Kind).
			Int("status", s.Generation.Failure.StatusCode).
			Msg("generation failed")
		if o.config.ShortCircuitFailures {
			s.transition(StateError)
			return s
		}
	}

	// A failed generation is still forwarded: its message is what gets
	// translated and scored.
	text := s.Generation.Message()

	s.transition(StateTranslating)
	code, _ := translator.CodeFor(profile.Language)
	s.Translation = o.translator.Translate(ctx, text, code)

	s.transition(StateScoring)
	s.Sentiment = o.scorer.Score(text)

	s.transition(StateRendered)
	log.Info().
		Bool("generated", s.Generation.OK()).
		Bool("translated", !s.Translation.Failed()).
		Str("sentiment", string(s.Sentiment)).
		Str("language", code).
		Msg("submission rendered")

	return s
}
