package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const prompt = "Generate 3-5 technical interview questions for a candidate proficient in go."

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "Q1?",
			expected: "Q1?",
		},
		{
			name:     "prompt echo removed",
			input:    prompt + "\n\n1. What is a goroutine?",
			expected: "1. What is a goroutine?",
		},
		{
			name:     "control tokens removed",
			input:    "<s>[INST] ask [/INST] 1. What is a channel?</s>",
			expected: "ask  1. What is a channel?",
		},
		{
			name:     "thinking block removed",
			input:    "<think>pick topics</think>1. Explain interfaces.",
			expected: "1. Explain interfaces.",
		},
		{
			name:     "truncated thinking block",
			input:    "1. Explain defer.<think>more",
			expected: "1. Explain defer.",
		},
		{
			name:     "quote wrapping",
			input:    "\"1. What is a slice?\"",
			expected: "1. What is a slice?",
		},
		{
			name:     "quoted terms at both ends kept",
			input:    "\"Q1\" vs \"Q2\"",
			expected: "\"Q1\" vs \"Q2\"",
		},
		{
			name:     "echo only keeps original",
			input:    prompt,
			expected: prompt,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input, prompt))
		})
	}
}

func TestRemovePromptEcho_EmptyPrompt(t *testing.T) {
	assert.Equal(t, "text", removePromptEcho("text", "  "))
}

func TestRemovePromptEcho_NotAtStart(t *testing.T) {
	input := "Intro. " + prompt
	assert.Equal(t, input, removePromptEcho(input, prompt))
}

func TestRemoveQuoteWrapping(t *testing.T) {
	assert.Equal(t, "a", removeQuoteWrapping("'a'"))
	assert.Equal(t, "x", removeQuoteWrapping("x"))
	assert.Equal(t, "\"open", removeQuoteWrapping("\"open"))
	assert.Equal(t, "curly", removeQuoteWrapping("“curly”"))
	assert.Equal(t, "'a' or 'b'", removeQuoteWrapping("'a' or 'b'"))
	assert.Equal(t, "“a” and “b”", removeQuoteWrapping("“a” and “b”"))
	assert.Equal(t, "'it's'", removeQuoteWrapping("'it's'"))
}
