// Package markdown renders generated questions, which models usually return
// as markdown lists, for the interview page.
package markdown

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML converts md to HTML. Raw HTML in the input is dropped and links are
// limited to safe schemes, so the result is safe to embed in a page.
func ToHTML(md string) template.HTML {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	opts := html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML | html.Safelink | html.NofollowLinks | html.HrefTargetBlank,
	}
	renderer := html.NewRenderer(opts)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))
	return template.HTML(markdown.Render(doc, renderer))
}
