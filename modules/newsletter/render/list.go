package render

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/newskit/modules/newsletter"
)

// writeList emits a bullet or numbered list block. Numbered indices are
// recomputed from item position on every render (1-based, zero-padded to
// two digits); nothing positional is ever read from storage.
func writeList(sb *strings.Builder, list newsletter.ListData) {
	sb.WriteString(`<div style="margin:12px 0;">`)
	for i, item := range list.Items {
		px := fontSizePx(item.FontSize, defaultContentPx)
		color := colorOr(item.Color, "#374151")

		sb.WriteString(`<div style="margin:6px 0;">`)
		if list.Type == newsletter.ListTypeNumbered {
			fmt.Fprintf(sb, `<span style="font-weight:bold;color:%s;">%02d.</span> `, color, i+1)
		} else {
			fmt.Fprintf(sb, `<span style="color:%s;">&#9679;</span> `, color)
		}
		fmt.Fprintf(sb, `<span style="font-size:%dpx;color:%s;">%s</span>`, px, color, convertMarkup(item.Text))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
}
