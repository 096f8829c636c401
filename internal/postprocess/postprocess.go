// Package postprocess tidies text returned by a generation backend before it
// is translated, scored and shown.
//
// Text-generation endpoints commonly return the prompt followed by the
// continuation, and instruction-tuned models may leave control tokens or
// reasoning blocks behind.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes model artifacts in three phases and returns the trimmed result:
//  1. Thinking / reasoning block removal
//  2. Prompt echo and control token removal
//  3. Quote wrapping removal
//
// If cleaning would leave nothing, the trimmed original is returned so a
// successful generation never renders as blank.
func Clean(text, prompt string) string {
	cleaned := removeThinkingBlocks(text)
	cleaned = removePromptEcho(cleaned, prompt)
	cleaned = removeControlTokens(cleaned)
	cleaned = removeQuoteWrapping(cleaned)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return strings.TrimSpace(text)
	}
	return cleaned
}

// thinkingBlockRe matches complete <think>…</think> style blocks. RE2 has no
// backreferences, so each variant is listed.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// truncatedThinkingRe matches an opened block whose closing tag never came.
var truncatedThinkingRe = regexp.MustCompile(`(?is)(?:<thinking>|<think>|<reasoning>).*$`)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// removePromptEcho drops the prompt when the model repeats it verbatim at the
// start of its output.
func removePromptEcho(text, prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return text
	}
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, prompt) {
		return strings.TrimSpace(trimmed[len(prompt):])
	}
	return text
}

// controlTokenRe matches Mistral/Llama instruct markers.
var controlTokenRe = regexp.MustCompile(`\[/?INST\]|</?s>|<\|(?:im_start|im_end|assistant|user|eot_id)\|>`)

func removeControlTokens(text string) string {
	return strings.TrimSpace(controlTokenRe.ReplaceAllString(text, ""))
}

// quotePairs maps an opening quote to its closing quote.
var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'“':  '”',
}

// removeQuoteWrapping strips the outer quotes only when they wrap the whole
// text: neither quote character may appear again inside it.
func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	closing, ok := quotePairs[runes[0]]
	if !ok || runes[n-1] != closing {
		return text
	}
	inner := string(runes[1 : n-1])
	if strings.ContainsRune(inner, runes[0]) || strings.ContainsRune(inner, closing) {
		return text
	}
	return strings.TrimSpace(inner)
}
