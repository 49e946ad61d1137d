package render

import (
	"bytes"
	"context"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// NotesConverter renders free-form notes/terms text to HTML.
type NotesConverter interface {
	ToHTML(ctx context.Context, content string) template.HTML
}

// GoldmarkNotes converts Markdown notes to HTML using goldmark (pure Go).
// A conversion failure degrades to escaped plain text: notes are cosmetic
// and must never abort document generation.
type GoldmarkNotes struct {
	md goldmark.Markdown
}

// NewGoldmarkNotes creates a GoldmarkNotes with GFM extensions.
func NewGoldmarkNotes() *GoldmarkNotes {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // treat newlines as <br>
			// WithUnsafe intentionally not used: notes come from API payloads.
		),
	)
	return &GoldmarkNotes{md: md}
}

// ToHTML converts Markdown content to HTML. Empty input yields empty output
// so templates can use it in conditionals.
func (g *GoldmarkNotes) ToHTML(ctx context.Context, content string) template.HTML {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	if ctx.Err() != nil {
		return escapeFallback(content)
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(content), &buf); err != nil {
		return escapeFallback(content)
	}
	return template.HTML(buf.String()) // #nosec G203 -- goldmark output with unsafe HTML disabled
}

func escapeFallback(content string) template.HTML {
	return template.HTML("<p>" + template.HTMLEscapeString(content) + "</p>")
}

// Compile-time interface check.
var _ NotesConverter = (*GoldmarkNotes)(nil)
