package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML_List(t *testing.T) {
	out := string(ToHTML("1. What is a goroutine?\n2. What is a channel?\n"))

	assert.Contains(t, out, "<ol>")
	assert.Contains(t, out, "<li>What is a goroutine?</li>")
	assert.Contains(t, out, "<li>What is a channel?</li>")
}

func TestToHTML_DropsRawHTML(t *testing.T) {
	out := string(ToHTML("Q1?<script>alert(1)</script>"))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Q1?")
}

func TestToHTML_UnsafeLinks(t *testing.T) {
	out := string(ToHTML("[click](javascript:alert(document.cookie))"))

	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "<a ")
	assert.Contains(t, out, "click")
}

func TestToHTML_SafeLinks(t *testing.T) {
	out := string(ToHTML("[docs](https://go.dev/doc)"))

	assert.Contains(t, out, `href="https://go.dev/doc"`)
	assert.Contains(t, out, "nofollow")
	assert.Contains(t, out, `target="_blank"`)
}

func TestToHTML_Empty(t *testing.T) {
	assert.Equal(t, "", string(ToHTML("   ")))
}
