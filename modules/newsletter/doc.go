// Package newsletter implements the newsletter document model and its
// lifecycle: a recursive content tree of sections, subsections, media
// items, and lists; pure copy-on-write mutations over that tree; the JSON
// wire codec with a legacy-content fallback; and the persistence and send
// orchestration around it.
//
// # Document model
//
// A Document is a value. Every mutation (AddSection, UpdateSection,
// RemoveMediaItem, ...) deep-copies and returns a new Document, so callers
// keep complete before/after snapshots for undo stacks and persistence
// without any defensive copying of their own. Mutations are total:
// operations addressing an id that no longer exists return the document
// unchanged, which lets edits against a stale copy degrade into no-ops
// instead of crashing the editing session.
//
// Updates are expressed as patch structs with pointer fields — an explicit
// field mask, where nil means "leave as is":
//
//	doc = doc.UpdateSection(sectionID, newsletter.SectionPatch{
//		Title: newsletter.Ptr("מה חדש השבוע"),
//	})
//
// Removing a media item preserves its attached free text by appending it to
// the owner's content (or a subsection's after-list block when the media
// trailed a list), joined by a blank line.
//
// # Persistence
//
// Records persist through the Repository interface; NewRepository provides
// the PostgreSQL implementation, storing the section tree as a JSONB blob.
// DecodeSections accepts both the current array wire shape and the legacy
// single-HTML-string shape, wrapping the latter into one synthetic section.
//
// # Sending
//
// Service.Send loads the record, renders it once through the injected
// RenderFunc, fans it out via the Dispatcher, and marks the record sent
// with the count of reached recipients. Partial delivery is a success
// condition; only a dispatch configuration error aborts the flow.
package newsletter
