package vanilla

import (
	"bytes"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	descriptionOnce     sync.Once
	descriptionMarkdown goldmark.Markdown
	descriptionPolicy   *bluemonday.Policy
)

// renderDescription converts markdown descriptions to sanitised HTML. Raw
// HTML in the source is omitted by goldmark; the policy then filters what the
// markdown stage produced.
func renderDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	md, policy := descriptionPipeline()

	var buf bytes.Buffer
	if err := md.Convert([]byte(trimmed), &buf); err != nil {
		return html.EscapeString(trimmed)
	}
	return strings.TrimSpace(policy.Sanitize(buf.String()))
}

func descriptionPipeline() (goldmark.Markdown, *bluemonday.Policy) {
	descriptionOnce.Do(func() {
		descriptionMarkdown = goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
		)
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		descriptionPolicy = policy
	})
	return descriptionMarkdown, descriptionPolicy
}
