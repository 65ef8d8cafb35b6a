package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/dmitrymomot/newskit/modules/newsletter"
)

// youtubeIDRegex extracts the 11-character video id from the three accepted
// URL shapes: youtube.com/watch?v=, youtu.be/ and youtube.com/embed/.
var youtubeIDRegex = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})`)

// extractYouTubeID returns the video id embedded in a YouTube URL.
func extractYouTubeID(url string) (string, bool) {
	m := youtubeIDRegex.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// writeMediaItem emits one of the four fixed media templates keyed by the
// item's type, followed by the item's trailing text paragraph if present.
func writeMediaItem(sb *strings.Builder, item newsletter.MediaItem) {
	align := alignmentStyle(item.Alignment)

	switch item.Type {
	case newsletter.MediaTypeVideo:
		writeVideoPlaceholder(sb, item, align)
	case newsletter.MediaTypeYouTube:
		writeYouTubeThumbnail(sb, item, align)
	case newsletter.MediaTypeLink:
		writeLinkPill(sb, item, align)
	default:
		// Image is the default template; an unknown type still renders
		// rather than vanish from the email.
		writeImage(sb, item, align)
	}

	if item.TextContent != "" {
		px := fontSizePx(item.TextFontSize, defaultContentPx)
		fmt.Fprintf(sb,
			`<p style="font-size:%dpx;color:#374151;margin:8px 0 16px;white-space:pre-line;">%s</p>`,
			px, convertMarkup(item.TextContent))
	}
}

func writeImage(sb *strings.Builder, item newsletter.MediaItem, align string) {
	width, maxWidth := mediaWidth(item.Size)
	alt := html.EscapeString(stripMarkup(item.Title))

	fmt.Fprintf(sb, `<div style="text-align:%s;margin:16px 0;">`, align)
	fmt.Fprintf(sb,
		`<img src="%s" alt="%s" style="width:%s;max-width:%s;height:auto;border-radius:8px;"/>`,
		html.EscapeString(item.URL), alt, width, maxWidth)
	writeMediaCaption(sb, item)
	sb.WriteString(`</div>`)
}

// writeVideoPlaceholder renders a clickable static block instead of a
// <video> tag, which most email clients refuse to play.
func writeVideoPlaceholder(sb *strings.Builder, item newsletter.MediaItem, align string) {
	width, maxWidth := mediaWidth(item.Size)
	label := item.Title
	if label == "" {
		label = "צפייה בסרטון"
	}

	fmt.Fprintf(sb, `<div style="text-align:%s;margin:16px 0;">`, align)
	fmt.Fprintf(sb, `<a href="%s" target="_blank" style="text-decoration:none;">`, html.EscapeString(item.URL))
	fmt.Fprintf(sb,
		`<div style="display:inline-block;width:%s;max-width:%s;background-color:#1f2937;color:#ffffff;padding:40px 16px;border-radius:8px;font-size:16px;">&#9654; %s</div>`,
		width, maxWidth, html.EscapeString(label))
	sb.WriteString(`</a>`)
	writeMediaCaption(sb, item)
	sb.WriteString(`</div>`)
}

func writeYouTubeThumbnail(sb *strings.Builder, item newsletter.MediaItem, align string) {
	width, maxWidth := mediaWidth(item.Size)

	// A precomputed preview (thumbnail composited with a play overlay by an
	// out-of-band step) wins over the live YouTube thumbnail URL.
	thumbnail := item.PreviewURL
	if thumbnail == "" {
		if id, ok := extractYouTubeID(item.URL); ok {
			thumbnail = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
		}
	}

	fmt.Fprintf(sb, `<div style="text-align:%s;margin:16px 0;">`, align)
	fmt.Fprintf(sb, `<a href="%s" target="_blank" style="text-decoration:none;">`, html.EscapeString(item.URL))
	if thumbnail != "" {
		alt := html.EscapeString(stripMarkup(item.Title))
		fmt.Fprintf(sb,
			`<img src="%s" alt="%s" style="width:%s;max-width:%s;height:auto;border-radius:8px;"/>`,
			html.EscapeString(thumbnail), alt, width, maxWidth)
	} else {
		// Unrecognized YouTube URL shape: degrade to a generic placeholder
		// icon that still links out.
		fmt.Fprintf(sb,
			`<div style="display:inline-block;width:%s;max-width:%s;background-color:#b91c1c;color:#ffffff;padding:40px 16px;border-radius:8px;font-size:24px;">&#9654;</div>`,
			width, maxWidth)
	}
	sb.WriteString(`</a>`)
	writeMediaCaption(sb, item)
	sb.WriteString(`</div>`)
}

func writeLinkPill(sb *strings.Builder, item newsletter.MediaItem, align string) {
	label := item.Title
	if label == "" {
		label = item.URL
	}

	fmt.Fprintf(sb, `<div style="text-align:%s;margin:16px 0;">`, align)
	fmt.Fprintf(sb,
		`<a href="%s" target="_blank" style="display:inline-block;background-color:#eff6ff;color:#1d4ed8;padding:10px 20px;border-radius:9999px;font-size:15px;text-decoration:none;">%s</a>`,
		html.EscapeString(item.URL), html.EscapeString(label))
	if item.Description != "" {
		fmt.Fprintf(sb,
			`<p style="font-size:13px;color:#6b7280;margin:6px 0 0;">%s</p>`,
			html.EscapeString(item.Description))
	}
	sb.WriteString(`</div>`)
}

// writeMediaCaption emits title/description lines under image-like media.
func writeMediaCaption(sb *strings.Builder, item newsletter.MediaItem) {
	if item.Type == newsletter.MediaTypeLink {
		return
	}
	if item.Title != "" && item.Type != newsletter.MediaTypeVideo {
		fmt.Fprintf(sb,
			`<p style="font-size:14px;font-weight:bold;color:#374151;margin:8px 0 0;">%s</p>`,
			html.EscapeString(item.Title))
	}
	if item.Description != "" {
		fmt.Fprintf(sb,
			`<p style="font-size:13px;color:#6b7280;margin:4px 0 0;">%s</p>`,
			html.EscapeString(item.Description))
	}
}
