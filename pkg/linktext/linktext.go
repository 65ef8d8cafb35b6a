package linktext

import (
	"fmt"
	"regexp"
	"strings"
)

// SelectionInfo is the resolved position of a user selection inside the raw
// markup-annotated string. Offsets are byte offsets, the unit Go strings
// index by; the same unit is applied across detect, insert, and remove, so
// multi-byte scripts never corrupt the range.
type SelectionInfo struct {
	Start          int
	End            int
	IsExistingLink bool
	LinkText       string
	URL            string
}

// fullLinkRegex matches a selection that is itself a complete link literal.
var fullLinkRegex = regexp.MustCompile(`^\[(.+)\]\((.+)\)$`)

// linkRegex matches every [text](url) span inside a raw string.
var linkRegex = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// DetectSelection maps the text a user selected in the rendered view back to
// an offset range in raw, which still carries the [text](url) encoding.
//
// Matching policy, in order:
//  1. The selection is itself a complete [text](url) literal: the range is
//     that exact literal within raw.
//  2. The selection equals the display text of an existing link in raw: the
//     range spans the entire [text](url) literal, not just the display text.
//  3. Plain text: the range is the first occurrence of the selection in raw.
//
// Repeated substrings resolve to the first occurrence in raw. This is a
// known simplification: without per-character provenance from the rendered
// view there is no way to tell identical occurrences apart, so a selection
// of a repeated phrase may resolve to an earlier copy than the one the user
// touched.
func DetectSelection(raw, selected string) (SelectionInfo, bool) {
	if selected == "" {
		return SelectionInfo{}, false
	}

	if m := fullLinkRegex.FindStringSubmatch(selected); m != nil {
		start := strings.Index(raw, selected)
		if start < 0 {
			return SelectionInfo{}, false
		}
		return SelectionInfo{
			Start:          start,
			End:            start + len(selected),
			IsExistingLink: true,
			LinkText:       m[1],
			URL:            m[2],
		}, true
	}

	for _, m := range linkRegex.FindAllStringSubmatchIndex(raw, -1) {
		if raw[m[2]:m[3]] == selected {
			return SelectionInfo{
				Start:          m[0],
				End:            m[1],
				IsExistingLink: true,
				LinkText:       selected,
				URL:            raw[m[4]:m[5]],
			}, true
		}
	}

	start := strings.Index(raw, selected)
	if start < 0 {
		return SelectionInfo{}, false
	}
	return SelectionInfo{
		Start:    start,
		End:      start + len(selected),
		LinkText: selected,
	}, true
}

// InsertOrEditLink replaces the selected range with a [display](url)
// literal and returns the new raw string. For a selection that resolved to
// an existing link the whole literal is replaced, which makes edit and
// insert the same operation. A selection whose offsets do not fit raw
// (stale selection against a changed string) leaves raw unchanged.
func InsertOrEditLink(raw string, sel SelectionInfo, url, display string) string {
	if !validRange(raw, sel) {
		return raw
	}
	return raw[:sel.Start] + fmt.Sprintf("[%s](%s)", display, url) + raw[sel.End:]
}

// RemoveLink unwraps the link at the selected range, keeping the visible
// words. The selection must have resolved to an existing link.
func RemoveLink(raw string, sel SelectionInfo) (string, error) {
	if !sel.IsExistingLink {
		return raw, ErrNotALink
	}
	if !validRange(raw, sel) {
		return raw, ErrStaleSelection
	}
	return raw[:sel.Start] + sel.LinkText + raw[sel.End:], nil
}

func validRange(raw string, sel SelectionInfo) bool {
	return sel.Start >= 0 && sel.End >= sel.Start && sel.End <= len(raw)
}
