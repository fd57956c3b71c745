// Package markdown renders user-submitted question and reply bodies
// to sanitized HTML.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/qaboard-dev/qaboard/internal/logger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	// Deliberately small parser: question bodies are plain prose with
	// the occasional code block, not full documents.
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extension.Strikethrough),
	)

	return &TextProcessor{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts markdown to HTML and strips everything the UGC
// policy disallows. The result is safe to embed unescaped.
func (tp *TextProcessor) Render(text string) template.HTML {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		logger.Log.Error("failed to render markdown", "error", err)
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(tp.policy.SanitizeBytes(buf.Bytes()))
}
