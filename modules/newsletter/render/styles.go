package render

import "github.com/dmitrymomot/newskit/modules/newsletter"

// Email clients ignore stylesheets, so every style is inlined and sizes are
// resolved to fixed pixel values here. Unknown enum values fall back to the
// documented defaults instead of dropping the element.

const (
	defaultTitlePx   = 18 // text-lg
	defaultContentPx = 16 // text-base
)

// fontSizePx resolves a font-size scale value to pixels.
func fontSizePx(f newsletter.FontSize, fallback int) int {
	switch f {
	case newsletter.FontSizeXS:
		return 12
	case newsletter.FontSizeSM:
		return 14
	case newsletter.FontSizeBase:
		return 16
	case newsletter.FontSizeLG:
		return 18
	case newsletter.FontSizeXL:
		return 20
	case newsletter.FontSize2XL:
		return 24
	case newsletter.FontSize3XL:
		return 30
	default:
		return fallback
	}
}

// mediaWidth resolves a media size to a relative width and the matching
// max-width cap. Unknown sizes render as medium.
func mediaWidth(size newsletter.MediaSize) (width, maxWidth string) {
	switch size {
	case newsletter.MediaSizeSmall:
		return "25%", "200px"
	case newsletter.MediaSizeMedium:
		return "50%", "400px"
	case newsletter.MediaSizeLarge:
		return "75%", "600px"
	case newsletter.MediaSizeFull:
		return "100%", "100%"
	default:
		return "50%", "400px"
	}
}

// alignmentStyle resolves an alignment to a text-align value. Unknown
// alignments render centered.
func alignmentStyle(a newsletter.Alignment) string {
	switch a {
	case newsletter.AlignLeft:
		return "left"
	case newsletter.AlignRight:
		return "right"
	case newsletter.AlignCenter:
		return "center"
	default:
		return "center"
	}
}

// colorOr returns the color if set, otherwise the fallback.
func colorOr(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}
