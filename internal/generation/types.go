// Package generation talks to remote text-generation backends and reports the
// outcome of each call as a Result instead of an error.
package generation

import (
	"context"
	"fmt"
	"net/http"
)

// FailureKind classifies why a generation call produced no text.
type FailureKind int

const (
	FailureModelLoading FailureKind = iota + 1
	FailureAuthorization
	FailureUnexpectedStatus
	FailureMalformedResponse
	FailureTransport
	FailureInvalidPrompt
)

func (k FailureKind) String() string {
	switch k {
	case FailureModelLoading:
		return "model_loading"
	case FailureAuthorization:
		return "authorization"
	case FailureUnexpectedStatus:
		return "unexpected_status"
	case FailureMalformedResponse:
		return "malformed_response"
	case FailureTransport:
		return "transport"
	case FailureInvalidPrompt:
		return "invalid_prompt"
	default:
		return "unknown"
	}
}

// User-facing messages substituted for the generated text.
const (
	MsgModelLoading      = "⏳ Model is still loading. Please wait a moment."
	MsgAuthorization     = "❌ API Key issue: This model requires a Pro subscription."
	MsgNoTextGenerated   = "⚠️ No text generated."
	MsgUnexpectedFormat  = "⚠️ Unexpected response format."
	MsgEmptyPrompt       = "⚠️ Prompt is empty."
	detailMissingText    = "missing generated_text"
	detailUnexpectedForm = "unexpected payload shape"
)

// Failure describes a generation call that did not yield text.
type Failure struct {
	Kind       FailureKind
	StatusCode int
	Detail     string
}

// Message is the text shown in place of the generated questions.
func (f *Failure) Message() string {
	switch f.Kind {
	case FailureModelLoading:
		return MsgModelLoading
	case FailureAuthorization:
		return MsgAuthorization
	case FailureUnexpectedStatus:
		return fmt.Sprintf("⚠️ Error %d: %s", f.StatusCode, f.Detail)
	case FailureMalformedResponse:
		if f.Detail == detailMissingText {
			return MsgNoTextGenerated
		}
		return MsgUnexpectedFormat
	case FailureTransport:
		return fmt.Sprintf("❌ An error occurred: %s", f.Detail)
	case FailureInvalidPrompt:
		return MsgEmptyPrompt
	default:
		return MsgUnexpectedFormat
	}
}

// Result holds exactly one of Text or Failure.
type Result struct {
	Text    string
	Failure *Failure
}

// Success wraps generated text.
func Success(text string) Result {
	return Result{Text: text}
}

// Fail builds a failed Result.
func Fail(kind FailureKind, statusCode int, detail string) Result {
	return Result{Failure: &Failure{Kind: kind, StatusCode: statusCode, Detail: detail}}
}

// OK reports whether the call produced text.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Message returns the generated text, or the failure message standing in for it.
func (r Result) Message() string {
	if r.Failure != nil {
		return r.Failure.Message()
	}
	return r.Text
}

// Generator produces text for a prompt. Implementations never return errors:
// every failure is folded into the Result.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) Result
}

// resultForStatus maps a non-OK HTTP status onto a failed Result.
func resultForStatus(code int, body string) Result {
	switch code {
	case http.StatusServiceUnavailable:
		return Fail(FailureModelLoading, code, body)
	case http.StatusForbidden:
		return Fail(FailureAuthorization, code, body)
	default:
		return Fail(FailureUnexpectedStatus, code, body)
	}
}
