package newsletter

import (
	"bytes"
	"encoding/json"
)

// EncodeSections serializes the section sequence to the persisted JSON wire
// shape: a plain array of Section objects.
func EncodeSections(sections []Section) ([]byte, error) {
	if sections == nil {
		sections = []Section{}
	}
	return json.Marshal(sections)
}

// DecodeSections parses the persisted content blob. The current wire shape
// is a JSON array of Section objects; records written before the structured
// editor existed store a single HTML string instead. Such legacy content is
// wrapped into one synthetic section whose Content carries the raw text —
// escaping happens at render time, so the legacy markup comes out as
// visible text rather than injected HTML. Decoding is total: no input
// produces an error.
func DecodeSections(data []byte) []Section {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	var sections []Section
	if err := json.Unmarshal(trimmed, &sections); err == nil {
		return sections
	}

	// Legacy content may be stored as a JSON string literal or as raw text.
	var legacy string
	if err := json.Unmarshal(trimmed, &legacy); err != nil {
		legacy = string(trimmed)
	}
	return []Section{legacySection(legacy)}
}

// legacySection wraps pre-structured content into a renderable section.
func legacySection(content string) Section {
	sec := NewSection()
	sec.Content = content
	return sec
}
