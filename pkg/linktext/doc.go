// Package linktext resolves text selections against strings that embed
// markdown-style [text](url) link spans, and expresses link edits as
// whole-string replacements.
//
// The editing surface renders link spans as clickable elements, so the text
// a user selects no longer lines up with the raw stored string. This package
// maps a selection back to a raw offset range (DetectSelection) and applies
// link operations against that range (InsertOrEditLink, RemoveLink). The
// caller writes the returned string back through its own update path; this
// package never mutates anything.
//
//	sel, ok := linktext.DetectSelection(raw, "read more")
//	if ok {
//		raw = linktext.InsertOrEditLink(raw, sel, "https://example.com", "read more")
//	}
//
// Selections over repeated substrings resolve to the first occurrence; see
// DetectSelection for why this ambiguity is accepted.
package linktext
