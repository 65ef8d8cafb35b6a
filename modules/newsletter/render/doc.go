// Package render converts a newsletter document into a static HTML email
// body: right-to-left, fully inline-styled, and renderable by email clients
// that strip stylesheets, scripts, and video tags.
//
// Render is referentially transparent — same document in, byte-identical
// HTML out — so it may be invoked from any goroutine and its output cached.
// The one network-adjacent concern, YouTube preview thumbnails, is resolved
// to a URL only: a precomputed PreviewURL wins when present, otherwise the
// live img.youtube.com thumbnail URL for the extracted video id is used,
// and an unextractable id degrades to a generic placeholder block.
//
// Malformed enum values (font sizes, media sizes, alignments) fall back to
// documented defaults rather than dropping elements or failing: an email
// that renders slightly wrong beats an email that never sends.
package render
