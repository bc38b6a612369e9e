// Package sanitize enforces the HTML allow-list policy for stored article
// content and derives plain-text excerpts from it.
//
// The allow-list is the single source of truth for what markup may persist:
// both create and update paths must run content through HTML so previously
// rejected markup can never leak back in on edit.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// contentPolicy permits the structural and inline tags authoring tools emit,
// plus anchors restricted to http/https link attributes. Everything else,
// including scripts, styles and unknown attributes, is removed while enclosed
// text is preserved.
var contentPolicy = newContentPolicy()

// textPolicy is the same engine with an empty allow-list. It is used only to
// derive plain-text excerpts and never to rewrite stored content.
var textPolicy = bluemonday.StrictPolicy()

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br",
		"strong", "b", "em", "i", "u",
		"ul", "ol", "li",
		"a",
	)
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowURLSchemes("http", "https")
	return p
}

// HTML reduces raw rich-text input to the allow-listed HTML subset.
// Pure and total: any input yields a sanitized string, never an error.
func HTML(raw string) string {
	return contentPolicy.Sanitize(raw)
}

// PlainText strips all markup from already-sanitized HTML, returning the
// enclosed text with entities decoded.
func PlainText(safeHTML string) string {
	return html.UnescapeString(textPolicy.Sanitize(safeHTML))
}

// Excerpt returns a plain-text prefix of the given HTML, at most max runes
// long. It backs the default meta-description when none is supplied.
func Excerpt(safeHTML string, max int) string {
	plain := strings.TrimSpace(PlainText(safeHTML))
	runes := []rune(plain)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes)
}
