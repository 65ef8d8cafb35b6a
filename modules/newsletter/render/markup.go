package render

import (
	"html"
	"regexp"
	"strings"
)

// Text fields carry two inline markup conventions: **text** for bold and
// [text](url) for links. Conversion escapes the raw text first, so user
// content can never inject HTML, then rewrites bold before links — link
// display text is never bold-wrapped in this scheme, so the two rewrites
// cannot conflict.

var (
	boldRegex = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	linkRegex = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// convertMarkup turns raw annotated text into an inline HTML fragment.
func convertMarkup(raw string) string {
	out := html.EscapeString(raw)
	out = boldRegex.ReplaceAllString(out, `<strong>$1</strong>`)
	out = linkRegex.ReplaceAllString(out, `<a href="$2" target="_blank" style="color:#2563eb;text-decoration:underline;">$1</a>`)
	return out
}

// stripMarkup returns the visible text of an annotated string, for places
// like image alt attributes where markup makes no sense.
func stripMarkup(raw string) string {
	out := linkRegex.ReplaceAllString(raw, "$1")
	out = boldRegex.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}
