package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dmitrymomot/newskit/modules/newsletter"
)

// Render converts a newsletter document into a self-contained, responsive,
// right-to-left HTML email body. It is a pure function: no I/O, no clock,
// no randomness — the same document always produces byte-identical output,
// so it can be called from any goroutine and rendered output can be cached
// or diffed safely.
func Render(doc newsletter.Document) string {
	var sb strings.Builder

	sb.WriteString(`<div dir="rtl" style="max-width:600px;margin:0 auto;background-color:#f9fafb;font-family:Arial,Helvetica,sans-serif;">`)

	writeHeader(&sb, doc)

	sb.WriteString(`<div style="padding:16px;">`)
	for _, sec := range doc.Sections {
		writeSection(&sb, sec)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)
	return sb.String()
}

// writeHeader emits the gradient banner with the main title, subtitle, and
// display date, once, before the first section.
func writeHeader(sb *strings.Builder, doc newsletter.Document) {
	sb.WriteString(`<div style="background:linear-gradient(135deg,#2563eb 0%,#7c3aed 100%);padding:32px 24px;text-align:center;border-radius:0 0 16px 16px;">`)
	fmt.Fprintf(sb,
		`<h1 style="color:#ffffff;font-size:28px;margin:0;">%s</h1>`,
		convertMarkup(doc.MainTitle))
	if doc.SubTitle != "" {
		fmt.Fprintf(sb,
			`<p style="color:#e0e7ff;font-size:16px;margin:8px 0 0;">%s</p>`,
			convertMarkup(doc.SubTitle))
	}
	if doc.Date != "" {
		fmt.Fprintf(sb,
			`<p style="color:#c7d2fe;font-size:13px;margin:8px 0 0;">%s</p>`,
			html.EscapeString(doc.Date))
	}
	sb.WriteString(`</div>`)
}

func writeSection(sb *strings.Builder, sec newsletter.Section) {
	background := colorOr(sec.BackgroundColor, "#ffffff")
	sideLine := colorOr(sec.SideLineColor, "#3b82f6")

	// The side line sits on the right edge: the layout is RTL.
	fmt.Fprintf(sb,
		`<div style="background-color:%s;border-right:4px solid %s;border-radius:8px;padding:20px;margin-bottom:16px;">`,
		background, sideLine)

	if sec.Title != "" {
		fmt.Fprintf(sb,
			`<h2 style="font-size:%dpx;color:#111827;margin:0 0 12px;">%s</h2>`,
			fontSizePx(sec.TitleFontSize, defaultTitlePx), convertMarkup(sec.Title))
	}
	if sec.Content != "" {
		fmt.Fprintf(sb,
			`<div style="font-size:%dpx;color:#374151;line-height:1.6;white-space:pre-line;">%s</div>`,
			fontSizePx(sec.ContentFontSize, defaultContentPx), convertMarkup(sec.Content))
	}

	for _, item := range sec.MediaItems {
		writeMediaItem(sb, item)
	}
	for _, list := range sec.Lists {
		writeList(sb, list)
	}
	for _, sub := range sec.Subsections {
		writeSubsection(sb, sub)
	}

	sb.WriteString(`</div>`)
}

// writeSubsection recurses through the same content pipeline as a section,
// at a nested indent/border style, and appends the after-list text block.
func writeSubsection(sb *strings.Builder, sub newsletter.Subsection) {
	sb.WriteString(`<div style="margin:16px 12px 0 0;padding:12px 16px;border-right:2px solid #d1d5db;">`)

	if sub.Title != "" {
		fmt.Fprintf(sb,
			`<h3 style="font-size:%dpx;color:%s;margin:0 0 8px;">%s</h3>`,
			fontSizePx(sub.TitleFontSize, defaultTitlePx),
			colorOr(sub.TitleColor, "#1f2937"),
			convertMarkup(sub.Title))
	}
	if sub.Content != "" {
		fmt.Fprintf(sb,
			`<div style="font-size:%dpx;color:#374151;line-height:1.6;white-space:pre-line;">%s</div>`,
			fontSizePx(sub.ContentFontSize, defaultContentPx), convertMarkup(sub.Content))
	}

	for _, item := range sub.MediaItems {
		writeMediaItem(sb, item)
	}
	for _, list := range sub.Lists {
		writeList(sb, list)
	}

	if sub.AfterListContent != "" {
		fmt.Fprintf(sb,
			`<div style="font-size:%dpx;color:#374151;line-height:1.6;white-space:pre-line;margin-top:8px;">%s</div>`,
			fontSizePx(sub.ContentFontSize, defaultContentPx), convertMarkup(sub.AfterListContent))
	}

	sb.WriteString(`</div>`)
}
